package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/port"
	"github.com/arturoeanton/go-movie-recommender/internal/service"
)

// MovieHandler handles title resolution endpoints: recommendations and
// enriched search.
type MovieHandler struct {
	recommend   *service.RecommendService
	search      *service.SearchService
	defaultTopN int
}

// NewMovieHandler creates a new movie handler. defaultTopN is used when the
// recommend request does not carry an n parameter.
func NewMovieHandler(recommend *service.RecommendService, search *service.SearchService, defaultTopN int) *MovieHandler {
	if defaultTopN < 1 {
		defaultTopN = 10
	}
	return &MovieHandler{recommend: recommend, search: search, defaultTopN: defaultTopN}
}

// Register sets up movie routes.
func (h *MovieHandler) Register(api fiber.Router) {
	api.Get("/recommend", h.Recommend)
	api.Get("/search", h.Search)
}

// recommendResponse is the payload of GET /recommend.
type recommendResponse struct {
	MatchedTitle    string                  `json:"matchedTitle"`
	UsedFuzzyMatch  bool                    `json:"usedFuzzyMatch"`
	SearchedQuery   string                  `json:"searchedQuery,omitempty"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// Recommend resolves ?title and returns the top-n content-similar movies.
func (h *MovieHandler) Recommend(c fiber.Ctx) error {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	topN := h.defaultTopN
	if raw := c.Query("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "n must be a positive integer"})
		}
		topN = n
	}

	result, err := h.recommend.Recommend(c.Context(), title, topN)
	if err != nil {
		if errors.Is(err, port.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "movie not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := recommendResponse{
		MatchedTitle:    result.Match.Movie.PrimaryTitle,
		UsedFuzzyMatch:  result.Match.UsedFuzzy(),
		Recommendations: result.Recommendations,
	}
	if result.Match.UsedFuzzy() {
		resp.SearchedQuery = result.Match.Query
	}
	return c.JSON(resp)
}

// searchResponse is the payload of GET /search: the full catalog fields of
// the best match plus the best-effort enrichment block.
type searchResponse struct {
	Tconst         string              `json:"tconst"`
	PrimaryTitle   string              `json:"primaryTitle"`
	StartYear      *int                `json:"startYear"`
	Genres         []string            `json:"genres"`
	AverageRating  *float64            `json:"averageRating"`
	NumVotes       int                 `json:"numVotes"`
	DirectorNames  string              `json:"directorNames"`
	OriginalTitle  *string             `json:"originalTitle"`
	RuntimeMinutes *int                `json:"runtimeMinutes"`
	Cast           []domain.CastMember `json:"cast"`
	UsedFuzzyMatch bool                `json:"usedFuzzyMatch"`
	SearchedQuery  string              `json:"searchedQuery,omitempty"`
}

// Search resolves ?title to its best catalog match, enriched from the
// relational store when it is reachable.
func (h *MovieHandler) Search(c fiber.Ctx) error {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	result, err := h.search.Search(c.Context(), title)
	if err != nil {
		if errors.Is(err, port.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "movie not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	m := result.Match.Movie
	resp := searchResponse{
		Tconst:         m.Tconst,
		PrimaryTitle:   m.PrimaryTitle,
		StartYear:      m.StartYear,
		Genres:         m.Genres,
		AverageRating:  m.AverageRating,
		NumVotes:       m.NumVotes,
		DirectorNames:  m.DirectorNames,
		OriginalTitle:  result.Details.OriginalTitle,
		RuntimeMinutes: result.Details.RuntimeMinutes,
		Cast:           result.Details.Cast,
		UsedFuzzyMatch: result.Match.UsedFuzzy(),
	}
	if result.Match.UsedFuzzy() {
		resp.SearchedQuery = result.Match.Query
	}
	return c.JSON(resp)
}
