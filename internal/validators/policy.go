package validators

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// FieldLength targets GenerationPolicy.Length.
	FieldLength = "length"
	// FieldCharacterClasses requires at least one class flag to be set.
	FieldCharacterClasses = "character_classes"
)

// PolicyValidator checks a generation policy against service limits before
// it reaches the generator. A maxLength of zero disables the upper bound.
type PolicyValidator struct {
	maxLength int
}

func NewPolicyValidator(maxLength int) Validator {
	return &PolicyValidator{maxLength: maxLength}
}

func (v *PolicyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GenerationPolicy:
		return v.validatePolicy(value, fields...)
	case *models.GenerationPolicy:
		return v.validatePolicy(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PolicyValidator) validatePolicy(p models.GenerationPolicy, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldCharacterClasses}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if p.Length < 1 {
				return ErrInvalidLength
			}
			if v.maxLength > 0 && p.Length > v.maxLength {
				return ErrLengthTooLarge
			}
		case FieldCharacterClasses:
			if !p.UseLower && !p.UseUpper && !p.UseDigits && !p.UseSymbols {
				return ErrNoCharacterClass
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
