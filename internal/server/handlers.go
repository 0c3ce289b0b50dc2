package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	httperrors "github.com/rahulkv/movieguess/pkg/http/errors"
)

const sessionHeader = "X-Session-ID"

type gameService interface {
	Ask(ctx context.Context, sessionID, question string) (string, error)
	Hint(ctx context.Context, sessionID string) (string, error)
}

// GameHandlers exposes the question and hint endpoints.
type GameHandlers struct {
	svc    gameService
	logger zerolog.Logger
}

func NewGameHandlers(svc gameService, logger zerolog.Logger) *GameHandlers {
	return &GameHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "game_http").Logger(),
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer    string `json:"answer"`
	GameOver  bool   `json:"game_over"`
	SessionID string `json:"session_id"`
}

type hintResponse struct {
	Hint      string `json:"hint"`
	SessionID string `json:"session_id"`
}

// HandleAsk handles POST /ask.
func (h *GameHandlers) HandleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		requestsTotal.WithLabelValues("ask", "405").Inc()
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestsTotal.WithLabelValues("ask", "400").Inc()
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		requestsTotal.WithLabelValues("ask", "400").Inc()
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "Question must not be empty.", "question")
		return
	}

	sessionID := sessionIDFrom(r)

	start := time.Now()
	answer, err := h.svc.Ask(r.Context(), sessionID, req.Question)
	if err != nil {
		requestsTotal.WithLabelValues("ask", "500").Inc()
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("ask failed")
		httperrors.RespondInternalError(w, httperrors.ErrCodeAnswerFailed, err.Error())
		return
	}
	completionSeconds.WithLabelValues("answer").Observe(time.Since(start).Seconds())

	requestsTotal.WithLabelValues("ask", "200").Inc()
	respondJSON(w, http.StatusOK, askResponse{
		Answer:    answer,
		GameOver:  isCorrectGuess(answer),
		SessionID: sessionID,
	})
}

// HandleHint handles GET /hint.
func (h *GameHandlers) HandleHint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		requestsTotal.WithLabelValues("hint", "405").Inc()
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	sessionID := sessionIDFrom(r)

	start := time.Now()
	hint, err := h.svc.Hint(r.Context(), sessionID)
	if err != nil {
		requestsTotal.WithLabelValues("hint", "500").Inc()
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("hint failed")
		httperrors.RespondInternalError(w, httperrors.ErrCodeHintFailed, err.Error())
		return
	}
	completionSeconds.WithLabelValues("hint").Observe(time.Since(start).Seconds())

	requestsTotal.WithLabelValues("hint", "200").Inc()
	respondJSON(w, http.StatusOK, hintResponse{
		Hint:      hint,
		SessionID: sessionID,
	})
}

func sessionIDFrom(r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

// isCorrectGuess mirrors the correct-guess template the prompt pins the
// model to. It is a text heuristic, not a parse: a differently phrased
// reply containing both markers would also flip the game over.
func isCorrectGuess(answer string) bool {
	lower := strings.ToLower(answer)
	return strings.HasPrefix(lower, "yes") && strings.Contains(lower, "correct")
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
