package services

import (
	"errors"
	"sync"
	"time"

	"wallet-service/internal/config"
	"wallet-service/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreakerConfigFrom converts environment configuration, keeping defaults for unset values
func CircuitBreakerConfigFrom(cfg config.CircuitBreakerConfig) CircuitBreakerConfig {
	out := DefaultCircuitBreakerConfig()
	if cfg.MaxFailures > 0 {
		out.MaxFailures = cfg.MaxFailures
	}
	if cfg.ResetTimeout > 0 {
		out.ResetTimeout = cfg.ResetTimeout
	}
	if cfg.HalfOpenMaxSucc > 0 {
		out.HalfOpenMaxSucc = cfg.HalfOpenMaxSucc
	}
	return out
}

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return &CircuitBreaker{
		config: config,
		state:  models.CircuitBreakerClosed,
		now:    time.Now,
	}
}

// IsOpen reports whether calls must be rejected. An open breaker moves to
// half-open once the reset timeout has passed since the last failure.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == models.CircuitBreakerOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = models.CircuitBreakerHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == models.CircuitBreakerOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitBreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.reset()
		}
	case models.CircuitBreakerClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case models.CircuitBreakerHalfOpen:
		cb.state = models.CircuitBreakerOpen
		cb.halfOpenSuccesses = 0
	case models.CircuitBreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = models.CircuitBreakerOpen
			cb.halfOpenSuccesses = 0
		}
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) reset() {
	cb.state = models.CircuitBreakerClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
