package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/quizforge/mcq-server/models"
)

func TestEchoStoreEchoesRecord(t *testing.T) {
	q := models.Question{
		ID:                 "q-1",
		QuestionText:       "Sample Question?",
		Options:            []string{"A", "B", "C", "D"},
		CorrectAnswerIndex: 2,
	}
	saved, err := NewEchoStore().Save(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(saved, q) {
		t.Fatalf("saved = %+v, want %+v", saved, q)
	}
}
