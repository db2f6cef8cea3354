package store

import (
	"context"
	"errors"

	"github.com/quizforge/mcq-server/models"
)

// ErrStorageFailure marks a failed save. Callers match it with errors.Is.
var ErrStorageFailure = errors.New("storage failure")

// QuestionStore receives a validated question and returns the stored
// record, or an error wrapping ErrStorageFailure. Conflict policy for a
// caller-supplied id is the store's concern, not the endpoint's.
type QuestionStore interface {
	Save(ctx context.Context, q models.Question) (models.Question, error)
}

// EchoStore simulates persistence by acknowledging every record as-is.
// It stands in for a real backend behind the same interface.
type EchoStore struct{}

func NewEchoStore() *EchoStore { return &EchoStore{} }

func (s *EchoStore) Save(_ context.Context, q models.Question) (models.Question, error) {
	return q, nil
}
