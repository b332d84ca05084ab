package image

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrAllocation    = errors.New("allocation error")
)

// ConfigurationError reports invalid dimensions, sizes, channel counts or
// filter parameters. Op names the operation that rejected them.
type ConfigurationError struct {
	Op  string
	Msg string
}

func NewConfigurationError(op string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// AllocationError reports a buffer or working window that could not be
// created. Limit is the bound that was exceeded.
type AllocationError struct {
	Op      string
	Samples int64
	Limit   int64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%s: cannot allocate buffer of %d samples (max %d)", e.Op, e.Samples, e.Limit)
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}
