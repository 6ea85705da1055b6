package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrDeliveryCircuitOpen = errors.New("reminder delivery circuit is open")

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
	}
}

// BreakerNotifier stops calling a failing transport for ResetTimeout after
// MaxFailures consecutive errors. Reminders skipped while open stay unmarked
// and are retried by the next run.
type BreakerNotifier struct {
	name   string
	next   Notifier
	config BreakerConfig
	now    func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewBreakerNotifier(name string, next Notifier, config BreakerConfig) *BreakerNotifier {
	return &BreakerNotifier{
		name:   name,
		next:   next,
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

func (b *BreakerNotifier) NotifyRenewal(ctx context.Context, reminder RenewalReminder) error {
	if !b.allow() {
		return fmt.Errorf("%s: %w", b.name, ErrDeliveryCircuitOpen)
	}

	err := b.next.NotifyRenewal(ctx, reminder)
	// a reminder without an address says nothing about the transport
	if err == nil || errors.Is(err, ErrNoRecipient) {
		b.recordSuccess()
		return err
	}

	b.recordFailure()
	return err
}

func (b *BreakerNotifier) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakerNotifier) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.lastFailureTime) > b.config.ResetTimeout {
		b.state = StateHalfOpen
		b.halfOpenSuccesses = 0
	}

	return b.state != StateOpen
}

func (b *BreakerNotifier) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.state = StateClosed
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *BreakerNotifier) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = b.now()

	switch b.state {
	case StateHalfOpen:
		b.state = StateOpen
		b.halfOpenSuccesses = 0
	case StateClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = StateOpen
		}
	}
}
