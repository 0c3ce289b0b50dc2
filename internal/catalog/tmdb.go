package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	tmdbDataset    = "AiresPucrs/tmdb-5000-movies"
	tmdbPageLength = 100
)

// TMDBClient pages the TMDB 5000 dataset out of the Hugging Face
// datasets-server rows API (no API key required).
type TMDBClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTMDBClient(baseURL string, httpClient *http.Client) *TMDBClient {
	if baseURL == "" {
		baseURL = "https://datasets-server.huggingface.co"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &TMDBClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type tmdbRow struct {
	Title       string     `json:"title"`
	ReleaseDate string     `json:"release_date"`
	Genres      string     `json:"genres"`
	Overview    string     `json:"overview"`
	Cast        string     `json:"cast"`
	Crew        string     `json:"crew"`
	Runtime     looseFloat `json:"runtime"`
	VoteAverage looseFloat `json:"vote_average"`
	VoteCount   looseFloat `json:"vote_count"`
	Popularity  looseFloat `json:"popularity"`
}

type tmdbRowsResponse struct {
	Rows []struct {
		Row tmdbRow `json:"row"`
	} `json:"rows"`
	NumRowsTotal int `json:"num_rows_total"`
}

// Fetch retrieves the full train split page by page.
func (c *TMDBClient) Fetch(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	offset := 0
	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		for _, r := range page.Rows {
			movies = append(movies, r.Row.toMovie())
		}
		offset += len(page.Rows)
		if len(page.Rows) == 0 || offset >= page.NumRowsTotal {
			break
		}
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("tmdb dataset returned no rows")
	}
	return movies, nil
}

func (c *TMDBClient) fetchPage(ctx context.Context, offset int) (*tmdbRowsResponse, error) {
	values := url.Values{}
	values.Set("dataset", tmdbDataset)
	values.Set("config", "default")
	values.Set("split", "train")
	values.Set("offset", strconv.Itoa(offset))
	values.Set("length", strconv.Itoa(tmdbPageLength))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/rows?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("datasets-server non-200: %d", resp.StatusCode)
	}

	var payload tmdbRowsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (r tmdbRow) toMovie() Movie {
	return Movie{
		Title:       r.Title,
		ReleaseDate: r.ReleaseDate,
		Genres:      r.Genres,
		Overview:    r.Overview,
		Cast:        r.Cast,
		Crew:        r.Crew,
		Runtime:     float64(r.Runtime),
		VoteAverage: float64(r.VoteAverage),
		VoteCount:   float64(r.VoteCount),
		Popularity:  float64(r.Popularity),
		Language:    "English",
	}
}

// looseFloat tolerates the dataset's inconsistent numeric typing, where
// columns like popularity arrive as either a number or a quoted string.
// Unparseable values decode to zero.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(v)
	return nil
}
