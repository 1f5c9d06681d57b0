// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerationPolicy describes the composition of a generated password.
//
// At least one class flag must be set and the resulting pool must stay
// non-empty once ambiguous characters are removed; the generator rejects
// anything else instead of producing a weak or empty password.
type GenerationPolicy struct {
	// Length is the number of characters to produce. Must be at least 1.
	Length int `json:"length"`

	// UseLower enables the lowercase class a-z.
	UseLower bool `json:"lower"`

	// UseUpper enables the uppercase class A-Z.
	UseUpper bool `json:"upper"`

	// UseDigits enables the digit class 0-9.
	UseDigits bool `json:"numbers"`

	// UseSymbols enables the fixed symbol class.
	UseSymbols bool `json:"symbols"`

	// ExcludeAmbiguous removes the visually confusable glyphs I, l, 1, O, 0
	// regardless of which class contributed them.
	ExcludeAmbiguous bool `json:"exclude_ambiguous"`
}

// DefaultGenerationPolicy mirrors the defaults offered to users: 16
// characters from every class with ambiguous glyphs excluded.
func DefaultGenerationPolicy() GenerationPolicy {
	return GenerationPolicy{
		Length:           16,
		UseLower:         true,
		UseUpper:         true,
		UseDigits:        true,
		UseSymbols:       true,
		ExcludeAmbiguous: true,
	}
}

// GeneratedPassword is the response body of the generate endpoint.
// Password is shown to the caller once and never persisted.
type GeneratedPassword struct {
	Password    string  `json:"password"`
	EntropyBits float64 `json:"entropy_bits"`
}
