package crypto

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "uppercase only",
			opts: GeneratorOptions{
				Length: 16, Uppercase: true,
			},
			wantErr: nil,
		},
		{
			name: "lowercase only",
			opts: GeneratorOptions{
				Length: 16, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "numbers only",
			opts: GeneratorOptions{
				Length: 16, Numbers: true,
			},
			wantErr: nil,
		},
		{
			name: "symbols only",
			opts: GeneratorOptions{
				Length: 16, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "minimum length fits all four types exactly",
			opts: GeneratorOptions{
				Length: MinLength, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "maximum length",
			opts: GeneratorOptions{
				Length: MaxLength, Uppercase: true, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "length too short",
			opts: GeneratorOptions{
				Length: 3, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: ErrLengthTooShort,
		},
		{
			name: "length two",
			opts: GeneratorOptions{
				Length: 2, Lowercase: true,
			},
			wantErr: ErrLengthTooShort,
		},
		{
			name: "length too long",
			opts: GeneratorOptions{
				Length: 200, Uppercase: true,
			},
			wantErr: ErrLengthTooLong,
		},
		{
			name: "no character types selected",
			opts: GeneratorOptions{
				Length: 16,
			},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	opts := GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	// The coverage guarantee must hold every time, not just with high
	// probability; run repeatedly to catch a regression to plain sampling.
	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		if !strings.ContainsAny(password, uppercaseChars) {
			t.Errorf("password %q missing uppercase character", password)
		}
		if !strings.ContainsAny(password, lowercaseChars) {
			t.Errorf("password %q missing lowercase character", password)
		}
		if !strings.ContainsAny(password, numberChars) {
			t.Errorf("password %q missing number character", password)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("password %q missing symbol character", password)
		}
	}
}

func TestGenerateShortestPasswordCoversAllTypes(t *testing.T) {
	opts := GeneratorOptions{
		Length:    4,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 4 {
			t.Fatalf("Generate() length = %d, want 4", len(password))
		}
		for _, charset := range []string{uppercaseChars, lowercaseChars, numberChars, symbolChars} {
			if !strings.ContainsAny(password, charset) {
				t.Errorf("password %q missing a character from %q", password, charset)
			}
		}
	}
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 32, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 32, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "numbers only",
			opts:    GeneratorOptions{Length: 32, Numbers: true},
			charset: numberChars,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true},
			charset: symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateMany(t *testing.T) {
	t.Run("returns the requested count", func(t *testing.T) {
		passwords, err := GenerateMany(5, DefaultOptions())
		if err != nil {
			t.Fatalf("GenerateMany() unexpected error: %v", err)
		}
		if len(passwords) != 5 {
			t.Fatalf("GenerateMany() count = %d, want 5", len(passwords))
		}
		for _, password := range passwords {
			if len(password) != DefaultLength {
				t.Errorf("password length = %d, want %d", len(password), DefaultLength)
			}
		}
	})

	t.Run("count zero rejected", func(t *testing.T) {
		if _, err := GenerateMany(0, DefaultOptions()); err != ErrCountOutOfRange {
			t.Errorf("GenerateMany() error = %v, want %v", err, ErrCountOutOfRange)
		}
	})

	t.Run("count above maximum rejected", func(t *testing.T) {
		if _, err := GenerateMany(MaxCount+1, DefaultOptions()); err != ErrCountOutOfRange {
			t.Errorf("GenerateMany() error = %v, want %v", err, ErrCountOutOfRange)
		}
	})

	t.Run("invalid options fail before any password is produced", func(t *testing.T) {
		passwords, err := GenerateMany(5, GeneratorOptions{Length: 16})
		if err != ErrNoCharacterTypes {
			t.Errorf("GenerateMany() error = %v, want %v", err, ErrNoCharacterTypes)
		}
		if passwords != nil {
			t.Errorf("GenerateMany() returned partial batch %v on error", passwords)
		}
	})
}
