package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulkv/movieguess/internal/catalog"
)

func TestAnswerPromptEmbedsGuessTemplate(t *testing.T) {
	facts := Facts(catalog.Movie{Title: "Inception", Language: "English"})
	prompt := AnswerPrompt(facts, "Inception", "English", "is it Inception?")

	assert.Contains(t, prompt, `"Yes, that is correct! The movie is inception."`)
	assert.Contains(t, prompt, `"No, that is not the movie or its franchise."`)
	assert.Contains(t, prompt, `respond "I don't have that information."`)
}

func TestAnswerPromptEmbedsSecretAndQuestion(t *testing.T) {
	facts := Facts(catalog.Movie{Title: "Dangal", Language: "Hindi", Overview: "A wrestler trains his daughters."})
	prompt := AnswerPrompt(facts, "Dangal", "Hindi", "  Is the movie about WRESTLING?  ")

	assert.Contains(t, prompt, `The movie title is: "dangal"`)
	assert.Contains(t, prompt, `The movie language is: "hindi"`)
	assert.Contains(t, prompt, "Movie facts:\nOverview: A wrestler trains his daughters.")
	assert.True(t, strings.HasSuffix(prompt, "User question: is the movie about wrestling?"),
		"question must arrive trimmed and lower-cased at the end of the prompt")
}

func TestAnswerPromptIsSelfContained(t *testing.T) {
	facts := Facts(catalog.Movie{Title: "Avatar", Language: "English"})
	prompt := AnswerPrompt(facts, "Avatar", "English", "is it animated?")

	// every fact line must ride along on every call
	for _, line := range facts {
		assert.Contains(t, prompt, line)
	}
}

func TestHintPromptOmitsTitle(t *testing.T) {
	facts := Facts(catalog.Movie{
		Title:    "Inception",
		Overview: "A thief enters dreams.",
		Language: "English",
	})
	prompt := HintPrompt(facts)

	assert.NotContains(t, strings.ToLower(prompt), "inception")
	assert.Contains(t, prompt, "do NOT reveal the movie title")
	assert.Contains(t, prompt, "Movie facts:\nOverview: A thief enters dreams.")
	assert.True(t, strings.HasSuffix(prompt, "Hint:"))
}
