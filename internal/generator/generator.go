package generator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// drawSize is the width of a single random draw in bytes.
const drawSize = 4

// Generator draws passwords from a random source.
type Generator struct {
	source io.Reader
}

// New returns a Generator reading from source. A nil source selects
// crypto/rand.Reader.
func New(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

var defaultGenerator = New(nil)

// Generate produces one password for policy using crypto/rand.
func Generate(policy models.GenerationPolicy) (string, error) {
	return defaultGenerator.Generate(policy)
}

// Generate returns a password of exactly policy.Length characters, each drawn
// uniformly from [Pool](policy).
func (g *Generator) Generate(policy models.GenerationPolicy) (string, error) {
	pool, err := Pool(policy)
	if err != nil {
		return "", err
	}

	n := uint64(len(pool))
	// values at or above limit would map unevenly onto the pool
	limit := (1 << 32) - (1<<32)%n

	out := make([]byte, policy.Length)
	buf := make([]byte, drawSize*policy.Length)

	for filled := 0; filled < policy.Length; {
		need := policy.Length - filled
		chunk := buf[:drawSize*need]
		if _, err := io.ReadFull(g.source, chunk); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
		}

		for i := 0; i < need; i++ {
			v := uint64(binary.BigEndian.Uint32(chunk[i*drawSize:]))
			if v >= limit {
				continue
			}
			out[filled] = pool[v%n]
			filled++
		}
	}

	return string(out), nil
}
