package ports

import "github.com/aalvaropc/advent/internal/domain"

// AnswerStore persists the answer baseline used for regression checks.
type AnswerStore interface {
	// Load returns the stored answers. A missing store yields an empty
	// mapping and an error matching domain.ErrNoAnswers.
	Load() (domain.Answers, error)
	// Save merges entries into the stored answers and rewrites the store.
	Save(entries []domain.Entry) error
}
