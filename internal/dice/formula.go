package dice

import (
	"errors"
	"strconv"
	"strings"
)

// DiceError is a custom error type for formula errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

const (
	ErrEmptyFormula   DiceError = "formula cannot be empty"
	ErrInvalidFormula DiceError = "invalid dice formula"
	ErrTooManyDice    DiceError = "too many dice in formula"
	ErrNumberTooLarge DiceError = "flat number in formula is too large"
)

const (
	// MaxDicePerTerm bounds the count of a single die term
	MaxDicePerTerm = 100

	// MaxFaces bounds the faces of a single die
	MaxFaces = 1000

	// MaxNumber bounds a flat number term
	MaxNumber = 10000
)

// Spec is one parsed term of a formula, either NdF or a flat number
type Spec struct {
	Operator string
	Count    int
	Faces    int
	Number   int
}

// Parse splits a formula such as "1d20 + 1d4 - 2" into term specs
func Parse(formula string) ([]Spec, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(formula), ""))
	if compact == "" {
		return nil, ErrEmptyFormula
	}

	var specs []Spec
	operator := "+"
	start := 0
	if compact[0] == '+' || compact[0] == '-' {
		operator = compact[:1]
		start = 1
	}

	for i := start; i <= len(compact); i++ {
		if i < len(compact) && compact[i] != '+' && compact[i] != '-' {
			continue
		}

		spec, err := parseTerm(compact[start:i])
		if err != nil {
			return nil, err
		}
		spec.Operator = operator
		specs = append(specs, spec)

		if i < len(compact) {
			operator = compact[i : i+1]
		}
		start = i + 1
	}

	return specs, nil
}

func parseTerm(raw string) (Spec, error) {
	if raw == "" {
		return Spec{}, ErrInvalidFormula
	}

	countPart, facesPart, isDie := strings.Cut(raw, "d")
	if !isDie {
		number, err := strconv.Atoi(raw)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Spec{}, ErrNumberTooLarge
			}
			return Spec{}, ErrInvalidFormula
		}
		if number < 0 {
			return Spec{}, ErrInvalidFormula
		}
		if number > MaxNumber {
			return Spec{}, ErrNumberTooLarge
		}
		return Spec{Number: number}, nil
	}

	count := 1
	if countPart != "" {
		parsed, err := strconv.Atoi(countPart)
		if err != nil {
			return Spec{}, ErrInvalidFormula
		}
		count = parsed
	}

	faces, err := strconv.Atoi(facesPart)
	if err != nil || faces < 1 || faces > MaxFaces || count < 1 {
		return Spec{}, ErrInvalidFormula
	}
	if count > MaxDicePerTerm {
		return Spec{}, ErrTooManyDice
	}

	return Spec{Count: count, Faces: faces}, nil
}

// Format renders specs back to a canonical formula
func Format(specs []Spec) string {
	var b strings.Builder
	for i, spec := range specs {
		if i > 0 || spec.Operator == "-" {
			b.WriteString(spec.Operator)
		}
		if spec.Faces == 0 {
			b.WriteString(strconv.Itoa(spec.Number))
			continue
		}
		b.WriteString(strconv.Itoa(spec.Count))
		b.WriteString("d")
		b.WriteString(strconv.Itoa(spec.Faces))
	}
	return b.String()
}
