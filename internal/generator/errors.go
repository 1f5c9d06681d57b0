package generator

import "errors"

var (
	// ErrInvalidPolicy is returned when the policy length is below 1 or no
	// character class is enabled.
	ErrInvalidPolicy = errors.New("invalid generation policy")

	// ErrEmptyPool is returned when ambiguous-character exclusion removed every
	// character of the enabled classes.
	ErrEmptyPool = errors.New("character pool is empty")

	// ErrRandomSource is returned when the random source fails to deliver
	// bytes.
	ErrRandomSource = errors.New("random source failure")
)
