package services_test

import (
	"testing"

	"foodcourt/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPinGenerator_Generate(t *testing.T) {
	t.Run("should generate six digits by default", func(t *testing.T) {
		gen := services.NewRandomPinGenerator(0)

		pin, err := gen.Generate()

		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, pin)
	})

	t.Run("should honour custom length", func(t *testing.T) {
		pin, err := services.NewRandomPinGenerator(4).Generate()

		require.NoError(t, err)
		assert.Regexp(t, `^\d{4}$`, pin)
	})

	t.Run("should not repeat across many draws", func(t *testing.T) {
		gen := services.NewRandomPinGenerator(services.DefaultPinLength)
		seen := make(map[string]struct{})
		for range 50 {
			pin, err := gen.Generate()
			require.NoError(t, err)
			seen[pin] = struct{}{}
		}
		assert.Greater(t, len(seen), 40)
	})
}
