package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/emergency-d20/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// Roller provides dice rolling functionality
type Roller interface {
	// Roll generates a random value for a single die with the specified number of sides
	Roll(sides int) int

	// Evaluate parses and rolls a dice formula such as 1d20+3
	Evaluate(formula string) (*models.Roll, error)
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 20
	}

	// rand.Rand is not safe for concurrent use and button handlers run in parallel
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Evaluate parses the formula and rolls every die term in it
func (r *roller) Evaluate(formula string) (*models.Roll, error) {
	specs, err := Parse(formula)
	if err != nil {
		return nil, err
	}

	roll := &models.Roll{
		Formula: Format(specs),
		Terms:   make([]*models.Term, 0, len(specs)),
	}

	for _, spec := range specs {
		term := &models.Term{
			Operator: spec.Operator,
		}

		if spec.Faces == 0 {
			term.Kind = models.TermKindNumeric
			term.Number = spec.Number
			term.Total = spec.Number
		} else {
			term.Kind = models.TermKindDie
			term.Count = spec.Count
			term.Faces = spec.Faces
			term.Results = make([]int, spec.Count)
			for i := 0; i < spec.Count; i++ {
				value := r.Roll(spec.Faces)
				term.Results[i] = value
				term.Total += value
			}
		}

		if spec.Operator == "-" {
			roll.Total -= term.Total
		} else {
			roll.Total += term.Total
		}
		roll.Terms = append(roll.Terms, term)
	}

	return roll, nil
}
