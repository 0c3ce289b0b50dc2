package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulkv/movieguess/internal/catalog"
	"github.com/rahulkv/movieguess/internal/config"
	"github.com/rahulkv/movieguess/internal/game"
	"github.com/rahulkv/movieguess/internal/llm"
	"github.com/rahulkv/movieguess/internal/session"
)

type fixedCompleter struct {
	reply string
	err   error
}

func (c *fixedCompleter) Complete(_ context.Context, _ string, _ llm.Options) (string, error) {
	return c.reply, c.err
}

func newTestServer(t *testing.T, completer game.Completer) *httptest.Server {
	t.Helper()
	pool := catalog.NewPool([]catalog.Movie{
		{Title: "Avatar", Language: "English", Overview: "Blue aliens on Pandora."},
	})
	svc := game.NewService(session.NewMemoryStore(pool), completer, game.ServiceOptions{}, zerolog.Nop())
	handlers := NewGameHandlers(svc, zerolog.Nop())
	srv := NewHTTPServer(&config.App{HTTPAddr: "127.0.0.1:0"}, zerolog.Nop(), handlers)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postAsk(t *testing.T, ts *httptest.Server, sessionID, question string) (*http.Response, askResponse) {
	t.Helper()
	body, err := json.Marshal(askRequest{Question: question})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/ask", bytes.NewReader(body))
	require.NoError(t, err)
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var parsed askResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	}
	return resp, parsed
}

func TestAskGeneratesSessionID(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{reply: "No"})

	resp, parsed := postAsk(t, ts, "", "is the movie avatar?")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No", parsed.Answer)
	assert.False(t, parsed.GameOver)

	_, err := uuid.Parse(parsed.SessionID)
	assert.NoError(t, err, "generated session id should be a uuid")
}

func TestAskGameOverFromAnswerText(t *testing.T) {
	cases := []struct {
		answer   string
		gameOver bool
	}{
		{"Yes, that is correct! The movie is avatar.", true},
		{"yes, that is CORRECT! the movie is avatar.", true},
		{"Yes", false},
		{"No, that is not the movie or its franchise.", false},
		{"I don't have that information.", false},
	}
	for _, tc := range cases {
		ts := newTestServer(t, &fixedCompleter{reply: tc.answer})
		_, parsed := postAsk(t, ts, "s1", "is the movie avatar?")
		assert.Equal(t, tc.gameOver, parsed.GameOver, "answer %q", tc.answer)
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{reply: "Yes"})

	for _, question := range []string{"", "   ", "\n\t"} {
		resp, _ := postAsk(t, ts, "s1", question)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestAskRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{reply: "Yes"})

	resp, err := ts.Client().Post(ts.URL+"/ask", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAskSurfacesCompletionFailure(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{err: errors.New("model unavailable")})

	resp, _ := postAsk(t, ts, "s1", "is it animated?")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHintKeepsSessionMovie(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{reply: "Think blue."})
	sessionID := "hint-session"

	getHint := func() hintResponse {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/hint", nil)
		require.NoError(t, err)
		req.Header.Set(sessionHeader, sessionID)
		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed hintResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		return parsed
	}

	first := getHint()
	second := getHint()
	assert.Equal(t, sessionID, first.SessionID)
	assert.Equal(t, sessionID, second.SessionID)
	assert.NotEmpty(t, first.Hint)
}

func TestHintRejectsPost(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{reply: "Think blue."})

	resp, err := ts.Client().Post(ts.URL+"/hint", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, &fixedCompleter{reply: "Yes"})

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
