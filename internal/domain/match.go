package domain

// MatchStage identifies which resolution strategy produced a match.
type MatchStage string

const (
	StageExact     MatchStage = "exact"
	StageSubstring MatchStage = "substring"
	StageFuzzy     MatchStage = "fuzzy"
)

// ResolvedMatch is the outcome of title resolution: the matched catalog
// movie, its catalog row, and how it was found. Score is the 0-100 scorer
// confidence and is only meaningful for StageFuzzy.
type ResolvedMatch struct {
	Movie Movie
	Index int
	Stage MatchStage
	Score int
	Query string
}

// UsedFuzzy reports whether the match came from the approximate stage.
// Callers must surface this to the end user since fuzzy results are guesses.
func (m ResolvedMatch) UsedFuzzy() bool {
	return m.Stage == StageFuzzy
}
