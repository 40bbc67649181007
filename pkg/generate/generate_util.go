package generate

import (
	"strings"

	"github.com/hashcracky/pw/pkg/structs"
)

// Character class alphabets. SpecialBasic is a subset of Special.
const (
	Lowercase    = "abcdefghijklmnopqrstuvwxyz"
	Uppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Number       = "0123456789"
	Special      = "~!@#$%^&*()_-+=:;<,>.?/"
	SpecialBasic = "$.-_,?!+:/"
)

// enabledClasses returns the alphabet of every class enabled in cfg.
//
// Args:
// cfg: structs.Config - Configuration to read.
//
// Returns:
// []string - One alphabet per enabled class, empty if none are enabled.
func enabledClasses(cfg structs.Config) []string {
	var classes []string

	switch cfg.Special {
	case structs.SpecialBasic:
		classes = append(classes, SpecialBasic)
	case structs.SpecialFull:
		classes = append(classes, Special)
	}

	if cfg.IncludeNumber {
		classes = append(classes, Number)
	}

	if cfg.IncludeUpper {
		classes = append(classes, Uppercase)
	}

	if cfg.IncludeLower {
		classes = append(classes, Lowercase)
	}

	return classes
}

// combine concatenates class alphabets into a single alphabet.
func combine(classes []string) string {
	return strings.Join(classes, "")
}

// pick draws one character uniformly from a non-empty alphabet.
//
// Args:
// alphabet: string - ASCII characters to choose from.
// src: Source - Randomness.
//
// Returns:
// byte - Chosen character.
func pick(alphabet string, src Source) byte {
	return alphabet[src.IntN(len(alphabet))]
}

// shuffle permutes b uniformly in place (Fisher-Yates).
//
// Args:
// b: []byte - Characters to shuffle.
// src: Source - Randomness.
func shuffle(b []byte, src Source) {
	for i := len(b) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}
