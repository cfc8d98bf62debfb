package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrURLTooShort         = errors.New("url is too short")
	ErrUnsupportedScheme   = errors.New("url must start with http:// or https://")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
)
