package settings

import "github.com/KirkDiggler/emergency-d20/internal/models"

type RegisterInput struct {
	Setting *models.Setting
}

type GetInput struct {
	Namespace string
	Key       string
}

type GetOutput struct {
	Setting *models.Setting
	Value   string
}

type SetInput struct {
	Namespace string
	Key       string
	Value     string
}
