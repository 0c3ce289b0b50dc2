package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	movies []Movie
	err    error
}

func (s *stubSource) Fetch(_ context.Context) ([]Movie, error) {
	return s.movies, s.err
}

func internationalFixture(n int) []Movie {
	movies := make([]Movie, 0, n)
	for i := 0; i < n; i++ {
		movies = append(movies, Movie{
			Title:      fmt.Sprintf("International %d", i),
			Popularity: float64(i),
			Language:   "English",
		})
	}
	return movies
}

func regionalFixture(n, year int) []Movie {
	movies := make([]Movie, 0, n)
	for i := 0; i < n; i++ {
		movies = append(movies, Movie{
			Title:       fmt.Sprintf("Regional %d", i),
			ReleaseDate: fmt.Sprint(year),
			Language:    "Hindi",
		})
	}
	return movies
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestBuildPoolComposition(t *testing.T) {
	builder := NewBuilder(
		&stubSource{movies: internationalFixture(400)},
		&stubSource{movies: regionalFixture(400, 2010)},
		BuildOptions{},
		testLogger(),
	)

	pool, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300, pool.Len(), "pool should hold 150 from each source")

	languages := map[string]int{}
	for i := 0; i < pool.Len(); i++ {
		languages[pool.At(i).Language]++
	}
	assert.Equal(t, 150, languages["English"])
	assert.Equal(t, 150, languages["Hindi"])
}

func TestBuildSampleIsSeedStable(t *testing.T) {
	opts := BuildOptions{PerSource: 10, TopPopular: 50, SampleSeed: 24}
	build := func() map[string]bool {
		builder := NewBuilder(
			&stubSource{movies: internationalFixture(80)},
			&stubSource{movies: regionalFixture(80, 2012)},
			opts,
			testLogger(),
		)
		pool, err := builder.Build(context.Background())
		require.NoError(t, err)
		titles := map[string]bool{}
		for i := 0; i < pool.Len(); i++ {
			titles[pool.At(i).Title] = true
		}
		return titles
	}

	// the interleave order varies run to run, the drawn titles must not
	assert.Equal(t, build(), build())
}

func TestBuildKeepsMostPopularInternational(t *testing.T) {
	builder := NewBuilder(
		&stubSource{movies: internationalFixture(300)},
		&stubSource{movies: regionalFixture(300, 2015)},
		BuildOptions{PerSource: 150, TopPopular: 150},
		testLogger(),
	)

	pool, err := builder.Build(context.Background())
	require.NoError(t, err)

	// fixture popularity climbs with the index, so every title below
	// "International 150" sits outside the top-150 cutoff
	for i := 0; i < pool.Len(); i++ {
		m := pool.At(i)
		if m.Language != "English" {
			continue
		}
		var idx int
		_, err := fmt.Sscanf(m.Title, "International %d", &idx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 150)
	}
}

func TestBuildFiltersRegionalYears(t *testing.T) {
	inWindow := regionalFixture(200, 2010)
	outOfWindow := append(regionalFixture(100, 1999), Movie{Title: "No Year", Language: "Hindi"})
	builder := NewBuilder(
		&stubSource{movies: internationalFixture(200)},
		&stubSource{movies: append(inWindow, outOfWindow...)},
		BuildOptions{PerSource: 150},
		testLogger(),
	)

	pool, err := builder.Build(context.Background())
	require.NoError(t, err)
	for i := 0; i < pool.Len(); i++ {
		m := pool.At(i)
		if m.Language == "Hindi" {
			assert.Equal(t, "2010", m.ReleaseDate)
		}
	}
}

func TestBuildFailsOnShortSource(t *testing.T) {
	builder := NewBuilder(
		&stubSource{movies: internationalFixture(200)},
		&stubSource{movies: regionalFixture(20, 2010)},
		BuildOptions{},
		testLogger(),
	)

	_, err := builder.Build(context.Background())
	assert.ErrorContains(t, err, "sample regional catalog")
}

func TestBuildFailsOnFetchError(t *testing.T) {
	builder := NewBuilder(
		&stubSource{err: errors.New("network down")},
		&stubSource{movies: regionalFixture(200, 2010)},
		BuildOptions{},
		testLogger(),
	)

	_, err := builder.Build(context.Background())
	assert.ErrorContains(t, err, "fetch international catalog")
}
