package flow

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is how long SimulatedBackend pretends a request takes.
const DefaultDelay = 1500 * time.Millisecond

// Backend sends and verifies one-time passcodes. Implementations must return
// promptly once ctx is cancelled.
type Backend interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (sessionID string, err error)
}

// SimulatedBackend stands in for a real OTP service. Every call waits Delay
// and then succeeds; any complete code is accepted.
type SimulatedBackend struct {
	Delay time.Duration
}

// NewSimulatedBackend returns a backend that waits delay before answering.
func NewSimulatedBackend(delay time.Duration) *SimulatedBackend {
	return &SimulatedBackend{Delay: delay}
}

func (b *SimulatedBackend) SendCode(ctx context.Context, _ string) error {
	return b.wait(ctx)
}

func (b *SimulatedBackend) VerifyCode(ctx context.Context, _, _ string) (string, error) {
	if err := b.wait(ctx); err != nil {
		return "", err
	}
	return uuid.NewString(), nil
}

func (b *SimulatedBackend) wait(ctx context.Context) error {
	timer := time.NewTimer(b.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
