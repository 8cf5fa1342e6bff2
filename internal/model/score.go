package model

// ScoreRequest represents a strength scoring request.
type ScoreRequest struct {
	Password string `json:"password"`
}

// ScoreResponse represents a strength scoring response. Score and Tier come
// from the length-plus-coverage heuristic; the zxcvbn fields are advisory.
type ScoreResponse struct {
	Score            int    `json:"score"`
	Tier             string `json:"tier"`
	ZxcvbnScore      int    `json:"zxcvbn_score"`
	CrackTimeDisplay string `json:"crack_time_display"`
}
