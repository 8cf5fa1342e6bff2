package service

import (
	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a batch of passwords based on the given request.
// Defaults are merged first and the whole request is validated before any
// password is built, so a failing request never yields partial output.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	passwords, err := crypto.GenerateMany(count, opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Count:     len(passwords),
		Passwords: make([]model.GeneratedPassword, 0, len(passwords)),
	}
	for _, password := range passwords {
		entry := model.GeneratedPassword{
			Password: password,
			Length:   len(password),
		}
		if req.Strength {
			rating := crypto.Score(password)
			entry.Strength = &model.PasswordStrength{
				Score: rating.Score,
				Tier:  rating.Tier,
			}
		}
		if req.Hash {
			hash, err := crypto.HashPassword(password)
			if err != nil {
				return model.GenerateResponse{}, err
			}
			entry.Hash = hash
		}
		resp.Passwords = append(resp.Passwords, entry)
	}

	return resp, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
