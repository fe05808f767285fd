package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
)

type Config struct {
	BaseURL   string        `default:"http://localhost:3000/check-prime" validate:"required,url"`
	// Timeout zero means no timeout, as with a bare http.Client.
	Timeout   time.Duration `validate:"gte=0"`
	UserAgent string        `default:"primeprobe/0.1"`
	Rate      int           `validate:"gte=0,lte=1000"`

	Format   string `default:"text" validate:"oneof=text json"`
	Color    string `default:"auto" validate:"oneof=auto always never"`
	LogLevel string `default:"warn" validate:"oneof=trace debug info warn error disabled"`
	Summary  bool

	// Items defaults to domain.DefaultItems when empty.
	Items []domain.Item
}

// InvalidConfigError lists every field that failed validation.
type InvalidConfigError struct {
	Problems []string
}

func (e *InvalidConfigError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

// Prepare fills zero values from the default tags and validates the result.
func (c *Config) Prepare() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("set config defaults: %w", err)
	}
	c.Format = strings.ToLower(c.Format)
	c.Color = strings.ToLower(c.Color)
	c.LogLevel = strings.ToLower(c.LogLevel)

	if len(c.Items) == 0 {
		c.Items = append([]domain.Item(nil), domain.DefaultItems...)
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			problems := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				problems = append(problems, describe(e))
			}
			return &InvalidConfigError{Problems: problems}
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "url":
		return fmt.Sprintf("%s %q is not a valid URL", e.Field(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", e.Field(), e.Value(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s failed %q", e.Field(), e.Tag())
}
