package config

import "errors"

var (
	ErrNoUnits         = errors.New("script has no units")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrUnknownKind     = errors.New("unknown unit kind")
	ErrDuplicateID     = errors.New("duplicate unit id")
	ErrTermOutOfRange  = errors.New("fibonacci term out of range")
)
