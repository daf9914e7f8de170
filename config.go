package lewis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every configuration rejection.
var ErrInvalidConfig = errors.New("lewis: invalid configuration")

// Config controls sieve construction.
type Config struct {
	Base    int64        `yaml:"base" json:"base" validate:"min=1"`       // Center of the window
	Workers int          `yaml:"workers" json:"workers" validate:"min=0"` // Trial-division goroutines (0 or 1 = sequential)
	Logger  *slog.Logger `yaml:"-" json:"-" validate:"-"`                 // nil = slog.Default()
}

// DefaultBase is the window center used when no base is given.
const DefaultBase = 20123

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Base:    DefaultBase,
		Workers: 1,
	}
}

var validate = validator.New()

// Validate checks the configuration before any sieve work begins.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Base" {
					return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, ErrInvalidBase, c.Base)
				}
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c Config) workers() int {
	return max(c.Workers, 1)
}
