package store

import "errors"

const (
	// MaxShortLen is the longest accepted short id.
	MaxShortLen = 20

	// MaxTargetURLLen is the longest accepted target URL.
	MaxTargetURLLen = 500
)

var (
	// ErrShortTooLong is returned when a short id exceeds MaxShortLen.
	ErrShortTooLong = errors.New("the short ID may not exceed 20 characters")

	// ErrTargetURLTooLong is returned when a target URL exceeds MaxTargetURLLen.
	ErrTargetURLTooLong = errors.New("the target URL may not exceed 500 characters")
)

// ValidateBounds checks the length bounds on a mapping before it touches
// storage. It does NOT check uniqueness: that is handled at the database
// layer via the primary key on urls.short.
func ValidateBounds(u URL) error {
	if len(u.Short) > MaxShortLen {
		return ErrShortTooLong
	}
	if len(u.TargetURL) > MaxTargetURLLen {
		return ErrTargetURLTooLong
	}
	return nil
}

// IsValidRedirectTarget reports whether s can be sent as an HTTP Location
// header value: no control bytes other than horizontal tab. A stored target
// failing this check is unprocessable, which is a distinct outcome from the
// mapping not existing.
func IsValidRedirectTarget(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 0x20 && b != '\t') || b == 0x7f {
			return false
		}
	}
	return true
}
