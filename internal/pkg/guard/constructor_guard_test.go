package guard_test

import (
	"errors"
	"testing"

	"eligibility/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("ServiceRule must be created via NewServiceRule")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard inside a value object built by a constructor.
func TestConstructorGuardEmbedded(t *testing.T) {
	errEnvelopeNotConstructed := errors.New("envelope must be created via newEnvelope")

	type envelope struct {
		dims  [3]float64
		guard guard.ConstructorGuard
	}

	newEnvelope := func(a, b, c float64) (envelope, error) {
		if a < 0 || b < 0 || c < 0 {
			return envelope{}, errors.New("dimensions cannot be negative")
		}
		return envelope{dims: [3]float64{a, b, c}, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		env, err := newEnvelope(353, 250, 25)

		require.NoError(t, err)
		require.NoError(t, env.guard.Validate(errEnvelopeNotConstructed))
		assert.Equal(t, [3]float64{353, 250, 25}, env.dims)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var env envelope

		err := env.guard.Validate(errEnvelopeNotConstructed)

		assert.Equal(t, errEnvelopeNotConstructed, err)
	})

	t.Run("guard_survives_copy", func(t *testing.T) {
		env, err := newEnvelope(1, 2, 3)
		require.NoError(t, err)

		copied := env

		require.NoError(t, copied.guard.Validate(errEnvelopeNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
