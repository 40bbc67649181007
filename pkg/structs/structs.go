// Package structs contains the model used by the application
package structs

import "math"

const (
	// DefaultLength is the password length used when no length token is given.
	DefaultLength uint16 = 32

	// MaxLength is the largest length that can be requested.
	MaxLength = math.MaxUint16
)

// SpecialMode selects which special characters, if any, a password may use.
//
// Basic and Full are mutually exclusive: Basic is a restricted subset of
// Full, so both cannot be selected at once.
type SpecialMode int

const (
	// SpecialNone disables special characters.
	SpecialNone SpecialMode = iota
	// SpecialBasic enables the restricted special character subset.
	SpecialBasic
	// SpecialFull enables the full special character set.
	SpecialFull
)

// String returns a short name for the mode.
//
// Returns:
// string - "none", "basic" or "full".
func (m SpecialMode) String() string {
	switch m {
	case SpecialBasic:
		return "basic"
	case SpecialFull:
		return "full"
	default:
		return "none"
	}
}

// Config holds all configuration options for a single password.
//
// Args:
// IncludeLower: bool - Include lowercase letters.
// IncludeUpper: bool - Include uppercase letters.
// IncludeNumber: bool - Include digits.
// Special: SpecialMode - Which special characters to include.
// Length: uint16 - Requested password length.
//
// Returns:
// Config - Configuration object for the generator.
type Config struct {
	IncludeLower  bool
	IncludeUpper  bool
	IncludeNumber bool
	Special       SpecialMode
	Length        uint16
}

// ClassCount returns the number of character classes the config enables.
//
// Returns:
// int - Number of enabled classes, 0 to 4.
func (c Config) ClassCount() int {
	count := 0
	for _, enabled := range []bool{c.IncludeLower, c.IncludeUpper, c.IncludeNumber, c.Special != SpecialNone} {
		if enabled {
			count++
		}
	}
	return count
}
