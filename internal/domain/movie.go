package domain

// Movie is one entry of the frozen catalog snapshot. The slice position of a
// movie inside the catalog is also its row in the TF-IDF matrix, so entries
// and matrix rows must never be reordered independently.
type Movie struct {
	Tconst        string   `json:"tconst"`
	PrimaryTitle  string   `json:"primaryTitle"`
	StartYear     *int     `json:"startYear"`
	Genres        []string `json:"genres"`
	AverageRating *float64 `json:"averageRating"`
	NumVotes      int      `json:"numVotes"`
	DirectorNames string   `json:"directorNames"`
	Soup          string   `json:"soup"` // genres + directors + decade, vectorized offline
}

// Recommendation pairs a catalog movie with its cosine similarity to the
// query movie. Similarity is in [0,1] for non-negative TF-IDF vectors.
type Recommendation struct {
	Title      string   `json:"primaryTitle"`
	Year       *int     `json:"startYear"`
	Genres     []string `json:"genres"`
	Rating     *float64 `json:"averageRating"`
	Similarity float64  `json:"similarity"`
}

// CastMember is one billed principal of a movie, fetched from the
// relational store.
type CastMember struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Characters *string `json:"characters"`
}

// MovieDetails holds the supplementary fields not present in the frozen
// snapshot. All fields stay absent when enrichment degrades.
type MovieDetails struct {
	OriginalTitle  *string      `json:"originalTitle"`
	RuntimeMinutes *int         `json:"runtimeMinutes"`
	Cast           []CastMember `json:"cast"`
}

// EnrichmentOutcome marks whether the relational store answered or the
// response fell back to catalog-only fields.
type EnrichmentOutcome string

const (
	Enriched EnrichmentOutcome = "enriched"
	Degraded EnrichmentOutcome = "degraded"
)
