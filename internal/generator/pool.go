package generator

import (
	"math"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Character classes in pool order.
const (
	Lower     = "abcdefghijklmnopqrstuvwxyz"
	Upper     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-_=+[]{};:,.<>?/"
	Ambiguous = "Il1O0"
)

// Pool returns the ordered character pool for policy: the enabled classes
// concatenated as lower, upper, digits, symbols, with the ambiguous set
// removed when policy.ExcludeAmbiguous is set.
//
// Returns [ErrInvalidPolicy] if the length is below 1 or no class is enabled,
// and [ErrEmptyPool] if nothing remains after exclusion.
func Pool(policy models.GenerationPolicy) (string, error) {
	if policy.Length < 1 {
		return "", ErrInvalidPolicy
	}
	if !policy.UseLower && !policy.UseUpper && !policy.UseDigits && !policy.UseSymbols {
		return "", ErrInvalidPolicy
	}

	var b strings.Builder
	b.Grow(len(Lower) + len(Upper) + len(Digits) + len(Symbols))

	for _, class := range []struct {
		enabled bool
		chars   string
	}{
		{policy.UseLower, Lower},
		{policy.UseUpper, Upper},
		{policy.UseDigits, Digits},
		{policy.UseSymbols, Symbols},
	} {
		if !class.enabled {
			continue
		}
		for _, c := range class.chars {
			if policy.ExcludeAmbiguous && strings.ContainsRune(Ambiguous, c) {
				continue
			}
			b.WriteRune(c)
		}
	}

	if b.Len() == 0 {
		return "", ErrEmptyPool
	}

	return b.String(), nil
}

// Entropy returns the strength of a password generated under policy, in bits:
// Length * log2(len(pool)).
func Entropy(policy models.GenerationPolicy) (float64, error) {
	pool, err := Pool(policy)
	if err != nil {
		return 0, err
	}

	return float64(policy.Length) * math.Log2(float64(len(pool))), nil
}
