package eventloop

import (
	"fmt"
	"time"
)

// Config holds the event loop settings.
type Config struct {
	// Interval between generated events. Zero disables the ticker.
	Interval time.Duration `json:"interval"`

	// MaxEvents stops the loop after this many events. Zero means no limit.
	MaxEvents int `json:"max_events"`
}

func (c Config) String() string {
	return fmt.Sprintf("Config{Interval: %s, MaxEvents: %d}", c.Interval, c.MaxEvents)
}

// validate checks if a Config is valid.
func (c Config) validate() error {
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must not be negative, got %v", ErrInvalidConfig, c.Interval)
	}
	if c.MaxEvents < 0 {
		return fmt.Errorf("%w: max events must not be negative, got %d", ErrInvalidConfig, c.MaxEvents)
	}
	return nil
}
