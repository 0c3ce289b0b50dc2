package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults mirror the curation the game was tuned with: the 150 most
// popular international titles and Hindi releases from 2006 through 2019,
// 150 sampled from each side.
const (
	DefaultPerSource  = 150
	DefaultTopPopular = 150
	DefaultSampleSeed = 24
	DefaultYearMin    = 2006
	DefaultYearMax    = 2019
)

type internationalSource interface {
	Fetch(ctx context.Context) ([]Movie, error)
}

type regionalSource interface {
	Fetch(ctx context.Context) ([]Movie, error)
}

// BuildOptions tune filtering and sampling. Zero fields fall back to the
// defaults above.
type BuildOptions struct {
	PerSource  int   // records sampled from each source
	TopPopular int   // international source keeps this many, by popularity
	SampleSeed int64 // fixed seed so the per-source sample is reproducible
	YearMin    int   // regional source release-year window
	YearMax    int
}

// Builder assembles the candidate pool from both catalogs. It runs once at
// startup; any source failure is fatal to the caller.
type Builder struct {
	international internationalSource
	regional      regionalSource
	opts          BuildOptions
	logger        zerolog.Logger
}

func NewBuilder(international internationalSource, regional regionalSource, opts BuildOptions, logger zerolog.Logger) *Builder {
	if opts.PerSource <= 0 {
		opts.PerSource = DefaultPerSource
	}
	if opts.TopPopular <= 0 {
		opts.TopPopular = DefaultTopPopular
	}
	if opts.SampleSeed == 0 {
		opts.SampleSeed = DefaultSampleSeed
	}
	if opts.YearMin == 0 {
		opts.YearMin = DefaultYearMin
	}
	if opts.YearMax == 0 {
		opts.YearMax = DefaultYearMax
	}
	return &Builder{
		international: international,
		regional:      regional,
		opts:          opts,
		logger:        logger.With().Str("component", "catalog_builder").Logger(),
	}
}

// Build fetches, filters, samples and interleaves both sources. The
// per-source sample uses the fixed seed so the eligible set is stable
// across restarts; the final interleave is reshuffled every run.
func (b *Builder) Build(ctx context.Context) (*Pool, error) {
	international, err := b.international.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch international catalog: %w", err)
	}
	international = topByPopularity(international, b.opts.TopPopular)

	regional, err := b.regional.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch regional catalog: %w", err)
	}
	regional = filterReleaseYears(regional, b.opts.YearMin, b.opts.YearMax)

	intSample, err := sampleMovies(international, b.opts.PerSource, b.opts.SampleSeed)
	if err != nil {
		return nil, fmt.Errorf("sample international catalog: %w", err)
	}
	regSample, err := sampleMovies(regional, b.opts.PerSource, b.opts.SampleSeed)
	if err != nil {
		return nil, fmt.Errorf("sample regional catalog: %w", err)
	}

	combined := make([]Movie, 0, len(intSample)+len(regSample))
	combined = append(combined, intSample...)
	combined = append(combined, regSample...)

	shuffler := rand.New(rand.NewSource(time.Now().UnixNano()))
	shuffler.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	b.logger.Info().
		Int("international", len(intSample)).
		Int("regional", len(regSample)).
		Msg("candidate pool built")
	return NewPool(combined), nil
}

func topByPopularity(movies []Movie, n int) []Movie {
	sorted := make([]Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func filterReleaseYears(movies []Movie, minYear, maxYear int) []Movie {
	var kept []Movie
	for _, m := range movies {
		year, err := strconv.Atoi(strings.TrimSpace(m.ReleaseDate))
		if err != nil {
			continue
		}
		if year >= minYear && year <= maxYear {
			kept = append(kept, m)
		}
	}
	return kept
}

// sampleMovies draws n records without replacement using a dedicated
// seeded source, so both catalogs sample independently of each other.
func sampleMovies(movies []Movie, n int, seed int64) ([]Movie, error) {
	if len(movies) < n {
		return nil, fmt.Errorf("need %d qualifying records, have %d", n, len(movies))
	}
	rng := rand.New(rand.NewSource(seed))
	sample := make([]Movie, 0, n)
	for _, i := range rng.Perm(len(movies))[:n] {
		sample = append(sample, movies[i])
	}
	return sample, nil
}
