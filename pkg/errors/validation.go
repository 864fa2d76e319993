package errors

import (
	"unicode"
)

// maxPrefixLength bounds the triangle filter prefix.
const maxPrefixLength = 256

// ValidatePrefix validates the triangle filter prefix.
// An empty prefix is allowed and matches every node.
func ValidatePrefix(prefix string) error {
	if len(prefix) > maxPrefixLength {
		return New(ErrCodeInvalidPrefix, "prefix too long (max %d characters)", maxPrefixLength)
	}
	for _, r := range prefix {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPrefix, "prefix contains whitespace or control characters")
		}
		if r == '-' {
			return New(ErrCodeInvalidPrefix, "prefix cannot contain the edge separator")
		}
	}
	return nil
}
