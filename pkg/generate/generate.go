// Package generate contains logic for building random passwords
package generate

import (
	cryptorand "crypto/rand"
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/hashcracky/pw/pkg/structs"
)

// ErrNoCharset is returned when a config enables no character class.
var ErrNoCharset = errors.New("no character set selected")

// Source is the randomness used by Generate.
//
// IntN must return a uniformly distributed integer in [0, n) for n > 0.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a general-purpose generator seeded from OS entropy.
//
// Returns:
// *rand.Rand - ChaCha8-backed generator.
func NewSource() *rand.Rand {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic(err)
	}

	return rand.New(rand.NewChaCha8(seed))
}

// Generate builds a password from the character classes enabled in cfg.
//
// One character is drawn from every enabled class first, the result is then
// padded from the combined alphabet up to cfg.Length and finally shuffled.
// When cfg.Length is smaller than the number of enabled classes the password
// is longer than requested, one character per class.
//
// Args:
// cfg: structs.Config - Classes and length to use.
// src: Source - Randomness for every draw and the shuffle.
//
// Returns:
// string - Generated password.
// error - ErrNoCharset if no class is enabled.
func Generate(cfg structs.Config, src Source) (string, error) {
	classes := enabledClasses(cfg)
	if len(classes) == 0 {
		return "", ErrNoCharset
	}

	alphabet := combine(classes)

	password := make([]byte, 0, max(int(cfg.Length), len(classes)))
	for _, class := range classes {
		password = append(password, pick(class, src))
	}

	for len(password) < int(cfg.Length) {
		password = append(password, pick(alphabet, src))
	}

	shuffle(password, src)

	slog.Debug("Password generated.",
		"classes", len(classes),
		"alphabet", len(alphabet),
		"length", len(password),
	)

	return string(password), nil
}
