package hardware

import "errors"

var (
	// ErrUnknownSelector is returned by StaticResolver when the selector is
	// not one of the enumerated hardware classes for the tier.
	ErrUnknownSelector = errors.New("unknown hardware selector")

	// ErrConfigNotFound is returned by FileResolver when the profile path
	// does not resolve to a readable file.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigMalformed is returned by FileResolver when the profile file
	// cannot be decoded as the expected schema.
	ErrConfigMalformed = errors.New("configuration file malformed")
)
