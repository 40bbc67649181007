// Package args contains logic for turning raw command-line tokens into a
// validated configuration
package args

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashcracky/pw/pkg/structs"
)

var (
	// ErrInvalidFlag is returned for a flag letter that is not recognized.
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrInvalidLength is returned for a length token that is not an
	// unsigned 16-bit integer.
	ErrInvalidLength = errors.New("invalid length")
)

// Parse processes tokens left to right and returns the resulting Config.
//
// A token of "--help", or a short-flag cluster containing 'h', stops
// processing and reports a help request instead of a Config. Any other token
// starting with '-' is a cluster of single-letter flags. Every other token is
// a length, and the last one wins. When no class flag is given at all, every
// class is enabled with full special characters.
//
// Args:
// tokens: []string - Raw arguments, without the program name.
//
// Returns:
// structs.Config - Parsed configuration. Zero when help was requested or on error.
// bool - True if help was requested.
// error - ErrInvalidFlag or ErrInvalidLength, wrapped with the offending text.
func Parse(tokens []string) (structs.Config, bool, error) {
	cfg := structs.Config{Length: structs.DefaultLength}

	for _, token := range tokens {
		switch {
		case token == "--help":
			slog.Debug("Help requested.", "token", token)
			return structs.Config{}, true, nil
		case strings.HasPrefix(token, "-"):
			help, err := applyFlags(&cfg, token[1:])
			if err != nil {
				return structs.Config{}, false, err
			}
			if help {
				slog.Debug("Help requested.", "token", token)
				return structs.Config{}, true, nil
			}
		default:
			length, err := parseLength(token)
			if err != nil {
				return structs.Config{}, false, err
			}
			cfg.Length = length
		}
	}

	if cfg.ClassCount() == 0 {
		slog.Debug("No character class selected, enabling all.")
		cfg.IncludeLower = true
		cfg.IncludeUpper = true
		cfg.IncludeNumber = true
		cfg.Special = structs.SpecialFull
	}

	slog.Debug("Arguments parsed.",
		"lower", cfg.IncludeLower,
		"upper", cfg.IncludeUpper,
		"number", cfg.IncludeNumber,
		"special", cfg.Special,
		"length", cfg.Length,
	)

	return cfg, false, nil
}

// applyFlags applies every letter of a short-flag cluster to cfg.
//
// 's' only selects full special characters when none are selected yet, so it
// never undoes an earlier 'b'. 'b' always selects the basic subset.
//
// Args:
// cfg: *structs.Config - Configuration being built.
// cluster: string - Flag letters without the leading '-'.
//
// Returns:
// bool - True if the cluster asks for help.
// error - ErrInvalidFlag for an unknown letter.
func applyFlags(cfg *structs.Config, cluster string) (bool, error) {
	for _, flag := range cluster {
		switch flag {
		case 'l':
			cfg.IncludeLower = true
		case 'u':
			cfg.IncludeUpper = true
		case 'n':
			cfg.IncludeNumber = true
		case 's':
			if cfg.Special == structs.SpecialNone {
				cfg.Special = structs.SpecialFull
			}
		case 'b':
			cfg.Special = structs.SpecialBasic
		case 'h':
			return true, nil
		default:
			return false, fmt.Errorf("%w -%c", ErrInvalidFlag, flag)
		}
	}

	return false, nil
}

// parseLength parses a length token as an unsigned 16-bit integer.
//
// A single leading '+' is accepted when digits follow it.
//
// Args:
// token: string - Raw length token.
//
// Returns:
// uint16 - Parsed length.
// error - ErrInvalidLength naming the token and the maximum.
func parseLength(token string) (uint16, error) {
	digits := token
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}

	length, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %s (max %d)", ErrInvalidLength, token, structs.MaxLength)
	}

	return uint16(length), nil
}
