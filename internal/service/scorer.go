package service

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
)

// ScorerService rates password strength.
type ScorerService struct{}

// NewScorerService creates a new ScorerService.
func NewScorerService() *ScorerService {
	return &ScorerService{}
}

// Score rates any string, including the empty string. The score and tier
// come from the length-plus-coverage heuristic; the zxcvbn estimate is
// reported alongside but never influences the tier.
func (s *ScorerService) Score(password string) model.ScoreResponse {
	heuristic := crypto.Score(password)
	estimate := zxcvbn.PasswordStrength(password, nil)

	return model.ScoreResponse{
		Score:            heuristic.Score,
		Tier:             heuristic.Tier,
		ZxcvbnScore:      estimate.Score,
		CrackTimeDisplay: estimate.CrackTimeDisplay,
	}
}
