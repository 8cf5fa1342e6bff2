package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength = 4
	MaxLength = 128

	MinCount = 1
	MaxCount = 50

	DefaultLength = 16
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 4")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
	ErrCountOutOfRange    = errors.New("password count must be between 1 and 50")

	// ErrRandomSource reports that the secure random source failed.
	// It must never be recovered by falling back to a weaker source.
	ErrRandomSource = errors.New("secure random source unavailable")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Validate checks the options against the accepted bounds without consuming
// any randomness.
func Validate(opts GeneratorOptions) error {
	if opts.Length < MinLength {
		return ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return ErrLengthTooLong
	}
	sets := enabledSets(opts)
	if len(sets) == 0 {
		return ErrNoCharacterTypes
	}
	if opts.Length < len(sets) {
		return ErrLengthInsufficient
	}
	return nil
}

// Generate creates a cryptographically secure random password based on the
// given options. One position per enabled character type is reserved so that
// every selected type is guaranteed to appear, then the whole sequence is
// shuffled so reserved positions carry no information.
func Generate(opts GeneratorOptions) (string, error) {
	if err := Validate(opts); err != nil {
		return "", err
	}

	sets := enabledSets(opts)
	pool := strings.Join(sets, "")

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	for i, charset := range sets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(sets); i < opts.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Securely shuffle using Fisher-Yates with crypto/rand.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateMany produces count independent passwords from the same options.
// The request is validated once up front; either the full batch is returned
// or none of it.
func GenerateMany(count int, opts GeneratorOptions) ([]string, error) {
	if count < MinCount || count > MaxCount {
		return nil, ErrCountOutOfRange
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// enabledSets returns the alphabet of every enabled character type, in a
// fixed order.
func enabledSets(opts GeneratorOptions) []string {
	var sets []string
	if opts.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if opts.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if opts.Numbers {
		sets = append(sets, numberChars)
	}
	if opts.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
