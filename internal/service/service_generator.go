package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type passwordGenerator interface {
	Generate(policy models.GenerationPolicy) (string, error)
}

type generatorService struct {
	generator passwordGenerator
	validator validators.Validator

	logger *logger.Logger
}

// NewGeneratorService returns a GeneratorService that rejects policies longer
// than maxLength. A maxLength of zero disables the bound.
func NewGeneratorService(maxLength int, logger *logger.Logger) GeneratorService {
	return &generatorService{
		generator: generator.New(nil),
		validator: validators.NewPolicyValidator(maxLength),
		logger:    logger,
	}
}

func (s *generatorService) Generate(ctx context.Context, policy models.GenerationPolicy) (models.GeneratedPassword, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, policy); err != nil {
		log.Warn().Err(err).Int("length", policy.Length).Msg("generation policy rejected")
		return models.GeneratedPassword{}, err
	}

	password, err := s.generator.Generate(policy)
	if err != nil {
		log.Warn().Err(err).Int("length", policy.Length).Msg("password generation failed")
		return models.GeneratedPassword{}, fmt.Errorf("generate password: %w", err)
	}

	entropy, err := generator.Entropy(policy)
	if err != nil {
		return models.GeneratedPassword{}, fmt.Errorf("generate password: %w", err)
	}

	log.Debug().
		Int("length", policy.Length).
		Bool("lower", policy.UseLower).
		Bool("upper", policy.UseUpper).
		Bool("digits", policy.UseDigits).
		Bool("symbols", policy.UseSymbols).
		Bool("exclude_ambiguous", policy.ExcludeAmbiguous).
		Msg("password generated")

	return models.GeneratedPassword{Password: password, EntropyBits: entropy}, nil
}
