package validation

import (
	"net/url"
	"strings"
)

// MinURLLength is the shortest accepted URL, counted after trimming whitespace.
const MinURLLength = 8

var schemePrefixes = []string{"http://", "https://"}

// URLValidator performs cheap syntactic checks only. It never resolves or
// contacts the target host.
type URLValidator struct {
	maxLength       int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

// NewURLValidator returns a validator. maxLength <= 0 disables the upper bound.
func NewURLValidator(maxLength int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ErrEmptyURL
	}

	if len(trimmed) < MinURLLength {
		return ErrURLTooShort
	}

	if v.maxLength > 0 && len(trimmed) > v.maxLength {
		return ErrURLTooLong
	}

	if !hasHTTPScheme(trimmed) {
		return ErrUnsupportedScheme
	}

	if v.allowPrivateIPs {
		return nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ErrInvalidURLFormat
	}
	return v.ipValidator.ValidateHost(parsed.Host)
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	for _, prefix := range schemePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
