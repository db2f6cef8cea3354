package form

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/mcq-server/controllers"
	"github.com/quizforge/mcq-server/models"
	"github.com/quizforge/mcq-server/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	qc := controllers.NewQuestionController(store.NewEchoStore())
	qc.NewID = func() string { return "q-test" }
	r.POST("/api/questions", qc.SubmitQuestion)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSubmitAccepted(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL)

	idx := 2
	outcome, err := client.Submit(context.Background(), models.SubmitQuestionRequest{
		QuestionText:       "Sample Question?",
		Options:            []string{"A", "B", "C", "D"},
		CorrectAnswerIndex: &idx,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Accepted {
		t.Fatalf("outcome not accepted: %+v", outcome)
	}
	if outcome.Message == "" {
		t.Error("missing confirmation message")
	}
	if outcome.Question.ID != "q-test" {
		t.Errorf("id = %q, want %q", outcome.Question.ID, "q-test")
	}
}

func TestClientSubmitRejected(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL)

	idx := 5
	outcome, err := client.Submit(context.Background(), models.SubmitQuestionRequest{
		Options:            []string{"A", "B", "C"},
		CorrectAnswerIndex: &idx,
	})
	if err != nil {
		t.Fatalf("rejection must not be a transport error: %v", err)
	}
	if outcome.Accepted {
		t.Fatal("invalid submission accepted")
	}
	if len(outcome.Violations) != 3 {
		t.Fatalf("violations = %v, want 3 entries", outcome.Violations)
	}
}

func TestClientSubmitRejectionWithoutErrorKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"Too Many Requests","hint":"Please retry in a minute."}`))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL)

	idx := 0
	outcome, err := client.Submit(context.Background(), models.SubmitQuestionRequest{
		QuestionText:       "Q?",
		Options:            []string{"A", "B", "C", "D"},
		CorrectAnswerIndex: &idx,
	})
	if err != nil {
		t.Fatalf("an answered request must not be a transport error: %v", err)
	}
	if outcome.Accepted {
		t.Fatal("rejection reported as accepted")
	}
	if !strings.Contains(outcome.Message, "429") {
		t.Errorf("message %q does not carry the status code", outcome.Message)
	}
}

func TestClientSubmitTransportFailure(t *testing.T) {
	srv := newTestServer(t)
	srv.Close()
	client := NewClient(srv.URL)

	idx := 0
	_, err := client.Submit(context.Background(), models.SubmitQuestionRequest{
		QuestionText:       "Q?",
		Options:            []string{"A", "B", "C", "D"},
		CorrectAnswerIndex: &idx,
	})
	if err == nil {
		t.Fatal("expected a transport error from a closed server")
	}
}
