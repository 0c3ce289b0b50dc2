package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rahulkv/movieguess/internal/llm"
	"github.com/rahulkv/movieguess/internal/session"
)

// Completer is the external completion capability: one prompt in, free
// text out. Implemented by llm.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

// ServiceOptions fix the decoding parameters per mode. Answer mode runs
// greedy for determinism; hint mode keeps some temperature for variety.
type ServiceOptions struct {
	Answer llm.Options
	Hint   llm.Options
}

// Service orchestrates session resolution, fact derivation and prompt
// composition around the external model. It does not validate the model's
// reply against the rules; adherence is the model's side of the contract.
type Service struct {
	sessions  session.Store
	completer Completer
	opts      ServiceOptions
	logger    zerolog.Logger
}

func NewService(sessions session.Store, completer Completer, opts ServiceOptions, logger zerolog.Logger) *Service {
	if opts.Answer.MaxTokens == 0 {
		opts.Answer.MaxTokens = 50
	}
	if opts.Answer.TopP == 0 {
		opts.Answer.TopP = 1
	}
	if opts.Hint.Temperature == 0 {
		opts.Hint.Temperature = 0.7
	}
	if opts.Hint.MaxTokens == 0 {
		opts.Hint.MaxTokens = 50
	}
	if opts.Hint.TopP == 0 {
		opts.Hint.TopP = 1
	}
	return &Service{
		sessions:  sessions,
		completer: completer,
		opts:      opts,
		logger:    logger.With().Str("component", "game_service").Logger(),
	}
}

// Ask answers one yes/no question about the session's hidden movie. A new
// session id binds a movie as a side effect.
func (s *Service) Ask(ctx context.Context, sessionID, question string) (string, error) {
	movie, err := s.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}

	prompt := AnswerPrompt(Facts(movie), movie.Title, movie.Language, question)
	answer, err := s.completer.Complete(ctx, prompt, s.opts.Answer)
	if err != nil {
		return "", fmt.Errorf("answer completion: %w", err)
	}

	s.logger.Debug().Str("session_id", sessionID).Msg("question answered")
	return strings.TrimSpace(answer), nil
}

// Hint produces one spoiler-free clue for the session's hidden movie.
func (s *Service) Hint(ctx context.Context, sessionID string) (string, error) {
	movie, err := s.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}

	hint, err := s.completer.Complete(ctx, HintPrompt(Facts(movie)), s.opts.Hint)
	if err != nil {
		return "", fmt.Errorf("hint completion: %w", err)
	}

	s.logger.Debug().Str("session_id", sessionID).Msg("hint served")
	return strings.TrimSpace(hint), nil
}
