// Package game holds the trivia core: fact derivation, prompt composition
// and the answer/hint orchestration around the external model.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rahulkv/movieguess/internal/catalog"
)

// NotAvailable is the sentinel substituted for any missing fact value.
const NotAvailable = "N/A"

// Cast lines stop at the top-billed entries.
const maxCastNames = 6

// FactSheet is the ordered set of labeled clues the model is allowed to
// reason from. It always holds exactly nine lines.
type FactSheet []string

// Block renders the sheet as the newline-joined form embedded in prompts.
func (f FactSheet) Block() string {
	return strings.Join(f, "\n")
}

// Facts derives the sheet from a movie record. It is total: any missing or
// malformed field collapses to the sentinel, never an error.
func Facts(m catalog.Movie) FactSheet {
	genres := catalog.EntityNames(catalog.DecodeEntities(m.Genres))
	if len(genres) == 0 {
		genres = catalog.SplitPlain(m.Genres)
	}

	cast := catalog.EntityNames(catalog.DecodeEntities(m.Cast))
	if len(cast) > maxCastNames {
		cast = cast[:maxCastNames]
	}

	directors := directorNames(m)

	return FactSheet{
		"Overview: " + orNA(strings.TrimSpace(m.Overview)),
		"Release date: " + orNA(m.ReleaseDate),
		"Genres: " + joinOrNA(genres),
		"Main cast (top billed): " + joinOrNA(cast),
		"Director(s): " + joinOrNA(directors),
		"Runtime (minutes): " + numberOrNA(m.Runtime),
		fmt.Sprintf("Average rating: %s (votes: %s)", numberOrNA(m.VoteAverage), numberOrNA(m.VoteCount)),
		"Popularity score: " + numberOrNA(m.Popularity),
		"Language: " + orNA(m.Language),
	}
}

// directorNames filters crew entries whose job is "director", in any
// casing. Sources without a crew blob carry directors as plain text.
func directorNames(m catalog.Movie) []string {
	var names []string
	for _, e := range catalog.DecodeEntities(m.Crew) {
		if strings.EqualFold(e.Job, "Director") && e.Name != "" {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		names = catalog.SplitPlain(m.Director)
	}
	return names
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func joinOrNA(names []string) string {
	if len(names) == 0 {
		return NotAvailable
	}
	return strings.Join(names, ", ")
}

func numberOrNA(v float64) string {
	if v == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
