package handler

import (
	"encoding/json"
	"net/http"

	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/service"
)

// ScorerHandler handles HTTP requests for strength scoring.
type ScorerHandler struct {
	service *service.ScorerService
}

// NewScorerHandler creates a new ScorerHandler.
func NewScorerHandler(svc *service.ScorerService) *ScorerHandler {
	return &ScorerHandler{service: svc}
}

// HandleScore handles POST /api/v1/score requests. Scoring never fails;
// any string, including the empty one, maps to a score.
func (h *ScorerHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	writeJSON(w, http.StatusOK, h.service.Score(req.Password))
}
