package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/readwell/library-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.New(10, 200*time.Millisecond, 0.30, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// enough failures to cross the percentile and open the breaker
	for i := 0; i < 10; i++ {
		_ = cb.Call(failingService)
	}
	err := cb.Call(successfulService)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open state
	time.Sleep(250 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// closed again, failures start a fresh tail
	cb.Reset()
	require.NoError(t, cb.Call(successfulService))

	// a failure in half-open flips straight back to open
	for i := 0; i < 10; i++ {
		_ = cb.Call(failingService)
	}
	time.Sleep(250 * time.Millisecond)
	_ = cb.Call(failingService)
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
}
