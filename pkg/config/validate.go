package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration validates that a duration is greater than zero.
func ValidatePositiveDuration(name string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, d)
	}
	return nil
}

// ValidateDurationRange validates that min <= d <= max.
func ValidateDurationRange(name string, d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("%s: invalid range, min (%v) > max (%v)", name, min, max)
	}
	if d < min || d > max {
		return fmt.Errorf("%s must be between %v and %v, got %v", name, min, max, d)
	}
	return nil
}

// ValidatePositiveInt validates that n is greater than zero.
func ValidatePositiveInt(name string, n int64) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
