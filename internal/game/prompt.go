package game

import (
	"fmt"
	"strings"
)

// The model keeps no state between calls, so every prompt re-embeds the
// full rule set and fact sheet.

const answerRules = `You are an assistant that answers only 'Yes' or 'No' about a hidden movie
based on the factual information provided in the 'Movie facts' section below.

RULES:
1. If the user explicitly guesses the movie (e.g., "is the movie X?" or "is it X?"),
   compare their guess (case-insensitive) to the hidden title and hidden franchise.
2. If the guess matches exactly or clearly refers to the correct franchise, respond:
   "Yes, that is correct! The movie is %[1]s."
3. If the guess is incorrect, respond:
   "No, that is not the movie or its franchise."
4. For other questions that can be answered with the provided facts, respond only with "Yes" or "No".
5. If the fact is missing from the provided facts, respond "I don't have that information."
6. Never provide extra explanations or reveal the title unless the user explicitly asks or guesses correctly.

The movie title is: "%[1]s"
The movie language is: "%[2]s"`

const hintInstruction = `You are an assistant helping someone guess a hidden movie based on the following factual information.
Please provide a single, short, subtle hint (like a famous quote, tagline, or interesting clue) that could help guess the movie, but do NOT reveal the movie title or any explicit spoilers.`

// AnswerPrompt composes the answer-mode prompt: rule set with the secret
// title and language embedded, the fact sheet, then the normalized user
// question.
func AnswerPrompt(facts FactSheet, title, language, question string) string {
	rules := fmt.Sprintf(answerRules, strings.ToLower(title), strings.ToLower(language))
	return rules +
		"\n\nMovie facts:\n" + facts.Block() +
		"\n\nUser question: " + strings.ToLower(strings.TrimSpace(question))
}

// HintPrompt composes the hint-mode prompt. It carries the facts but never
// the title, so the model cannot leak what it was never given.
func HintPrompt(facts FactSheet) string {
	return hintInstruction +
		"\n\nMovie facts:\n" + facts.Block() +
		"\n\nHint:"
}
