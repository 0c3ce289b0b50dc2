package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBollywoodCSVURL = "https://raw.githubusercontent.com/devensinghbhagtani/Bollywood-Movie-Dataset/main/IMDB-Movie-Dataset(2023-1951).csv"

// BollywoodClient downloads the Hindi-language catalog, published as one
// CSV file.
type BollywoodClient struct {
	csvURL     string
	httpClient *http.Client
}

func NewBollywoodClient(csvURL string, httpClient *http.Client) *BollywoodClient {
	if csvURL == "" {
		csvURL = defaultBollywoodCSVURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &BollywoodClient{
		csvURL:     csvURL,
		httpClient: httpClient,
	}
}

// Fetch downloads and parses the CSV. Malformed lines are skipped; the
// upstream file is community-maintained and not perfectly clean.
func (c *BollywoodClient) Fetch(ctx context.Context) ([]Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.csvURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("bollywood csv non-200: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["movie_name"]; !ok {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var movies []Movie
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		title := field(record, "movie_name")
		if title == "" {
			continue
		}
		movies = append(movies, Movie{
			Title:       title,
			ReleaseDate: field(record, "year"),
			Genres:      field(record, "genre"),
			Overview:    field(record, "overview"),
			Director:    field(record, "director"),
			Language:    "Hindi",
		})
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("bollywood csv contained no usable rows")
	}
	return movies, nil
}
