package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizforge/mcq-server/config"
	"github.com/quizforge/mcq-server/controllers"
	"github.com/quizforge/mcq-server/store"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := config.Config{SubmitPerMinute: 600, SubmitBurst: 100, SubmitTTL: time.Minute}
	SetupRoutes(r, cfg, controllers.NewQuestionController(store.NewEchoStore()))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPing(t *testing.T) {
	w := get(newRouter(), "/ping")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("ping = %d %s", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	w := get(newRouter(), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
}

func TestRootListsDestinations(t *testing.T) {
	w := get(newRouter(), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("root = %d", w.Code)
	}
	var body struct {
		Endpoints []struct {
			Label string `json:"label"`
			Path  string `json:"path"`
		} `json:"endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode root body: %v", err)
	}
	for _, e := range body.Endpoints {
		if e.Label == "Add Question" && e.Path == "/api/questions" {
			return
		}
	}
	t.Fatalf("Add Question destination not registered: %+v", body.Endpoints)
}

func TestSubmitRouteWired(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/questions",
		strings.NewReader(`{"questionText":"Q?","options":["A","B","C","D"],"correctAnswerIndex":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("submit = %d %s", w.Code, w.Body.String())
	}
}
