package catalog

// Movie is the normalized record shared by both source catalogs. Only the
// title is guaranteed; everything else depends on what the source carries.
type Movie struct {
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Genres      string  `json:"genres"` // serialized entity blob or plain comma-separated text
	Overview    string  `json:"overview"`
	Cast        string  `json:"cast"`     // serialized entity blob, top-billed first
	Crew        string  `json:"crew"`     // serialized entity blob with job fields
	Director    string  `json:"director"` // plain names when the source carries them directly
	Runtime     float64 `json:"runtime"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   float64 `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	Language    string  `json:"language"`
}

// Pool is the fixed candidate set built once at startup. It is never
// mutated afterwards, so concurrent reads need no synchronization.
type Pool struct {
	movies []Movie
}

func NewPool(movies []Movie) *Pool {
	return &Pool{movies: movies}
}

func (p *Pool) Len() int {
	return len(p.movies)
}

// At returns the movie at index i. Callers pick indexes via their own
// random source; the pool itself holds no randomness.
func (p *Pool) At(i int) Movie {
	return p.movies[i]
}
