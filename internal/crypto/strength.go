package crypto

import (
	"unicode"
	"unicode/utf8"
)

// Tier labels ordered weakest to strongest.
const (
	TierVeryWeak   = "Very Weak"
	TierWeak       = "Weak"
	TierGood       = "Good"
	TierStrong     = "Strong"
	TierVeryStrong = "Very Strong"
)

const (
	lengthWeight = 2
	lengthCap    = 40
	classBonus   = 15
	maxScore     = 100
)

// StrengthScore is a bounded heuristic rating of a password.
type StrengthScore struct {
	Score int
	Tier  string
}

// Score rates any string from its length and character-class coverage.
// Length contributes min(2*len, 40); each present class (lowercase,
// uppercase, digit, or any non-alphanumeric rune as symbol) adds 15. The
// total is clamped to [0, 100]. This is a coarse heuristic, not an entropy
// estimate: length and class diversity count independently so
// short-but-diverse and long-but-simple inputs land in comparable tiers.
// The empty string scores 0.
func Score(s string) StrengthScore {
	score := utf8.RuneCountInString(s) * lengthWeight
	if score > lengthCap {
		score = lengthCap
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			score += classBonus
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return StrengthScore{Score: score, Tier: tierFor(score)}
}

// tierFor maps a score to its label using inclusive lower bounds.
func tierFor(score int) string {
	switch {
	case score >= 80:
		return TierVeryStrong
	case score >= 60:
		return TierStrong
	case score >= 40:
		return TierGood
	case score >= 20:
		return TierWeak
	default:
		return TierVeryWeak
	}
}
