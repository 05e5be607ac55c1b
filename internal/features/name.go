package features

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxNameLen is the longest feature name a working directory may use.
const MaxNameLen = 30

// ErrInvalidFeatureName is returned when no valid name can be derived.
var ErrInvalidFeatureName = errors.New("invalid feature name")

// DeriveName converts a branch name or a free-form description into a
// feature name.
//
// Rules:
//   - Branch-like input (no whitespace) keeps only the last "/" segment
//   - Lowercase; every run of characters outside [a-z0-9] becomes one hyphen
//   - Leading and trailing hyphens are trimmed
//   - Names over 30 characters are cut at the last hyphen within the limit
//
// Example: "Implement real-time notifications for dashboard" → "implement-real-time"
func DeriveName(input string) (string, error) {
	s := strings.TrimSpace(input)
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		if i := strings.LastIndex(s, "/"); i >= 0 {
			s = s[i+1:]
		}
	}

	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	name := strings.Trim(b.String(), "-")
	if name == "" {
		return "", fmt.Errorf("%w: %q has no letters or digits", ErrInvalidFeatureName, input)
	}
	if len(name) <= MaxNameLen {
		return name, nil
	}

	if name[MaxNameLen] == '-' {
		return name[:MaxNameLen], nil
	}
	cut := strings.LastIndex(name[:MaxNameLen], "-")
	if cut <= 0 {
		return "", fmt.Errorf("%w: %q cannot be shortened to %d characters at a word boundary; provide a shorter name",
			ErrInvalidFeatureName, input, MaxNameLen)
	}
	return name[:cut], nil
}

// ValidateName checks that name is usable as a single directory name.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidFeatureName, name)
	}
	return nil
}
