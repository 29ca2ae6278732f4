package emergency

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/KirkDiggler/emergency-d20/internal/repositories/settings"
)

// DefaultItemName is the item name used until a GM changes the setting
const DefaultItemName = "Emergency D20"

// SettingItemName is the key of the item name setting within FlagScope
const SettingItemName = "itemName"

// ItemNameSetting returns the definition of the item name setting
func ItemNameSetting() *models.Setting {
	return &models.Setting{
		Namespace: FlagScope,
		Key:       SettingItemName,
		Name:      "Emergency D20 Item Name",
		Hint:      "Name of the item on the Actor that represents an Emergency D20.",
		Scope:     models.SettingScopeWorld,
		Type:      models.SettingTypeString,
		Default:   DefaultItemName,
	}
}

// RegisterSettingsInput contains parameters for registering the module settings
type RegisterSettingsInput struct {
	// ItemName overrides the stored item name when non-empty
	ItemName string
}

// RegisterSettingsOutput contains the resolved setting values
type RegisterSettingsOutput struct {
	ItemName string
}

// RegisterSettings registers the item name setting and resolves its value
func RegisterSettings(ctx context.Context, repo settings.Repository, input *RegisterSettingsInput) (*RegisterSettingsOutput, error) {
	if repo == nil {
		return nil, errors.New("settings repository cannot be nil")
	}
	if input == nil {
		input = &RegisterSettingsInput{}
	}

	setting := ItemNameSetting()
	if err := repo.Register(ctx, &settings.RegisterInput{Setting: setting}); err != nil {
		return nil, fmt.Errorf("failed to register item name setting: %w", err)
	}

	if input.ItemName != "" {
		err := repo.Set(ctx, &settings.SetInput{
			Namespace: setting.Namespace,
			Key:       setting.Key,
			Value:     input.ItemName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store item name: %w", err)
		}
	}

	output, err := repo.Get(ctx, &settings.GetInput{
		Namespace: setting.Namespace,
		Key:       setting.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read item name: %w", err)
	}

	itemName := output.Value
	if itemName == "" {
		itemName = setting.Default
	}

	return &RegisterSettingsOutput{ItemName: itemName}, nil
}
