package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quizforge/mcq-server/models"
)

// SubmitOutcome is the decoded server answer to one submission exchange.
// Accepted carries the confirmation message and the echoed question;
// rejected carries the violation list (or a request-level message).
type SubmitOutcome struct {
	Accepted   bool
	Message    string
	Question   models.Question
	Violations []models.Violation
}

// Submitter performs one submission exchange. A non-nil error means no
// usable response was obtained (transport failure); server-side rejection
// is a successful exchange with Accepted=false.
type Submitter interface {
	Submit(ctx context.Context, req models.SubmitQuestionRequest) (SubmitOutcome, error)
}

// Client submits questions to the server over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type acceptedBody struct {
	Message  string          `json:"message"`
	Question models.Question `json:"question"`
}

type rejectedBody struct {
	Error json.RawMessage `json:"error"`
}

func (c *Client) Submit(ctx context.Context, req models.SubmitQuestionRequest) (SubmitOutcome, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("encode question: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/questions", bytes.NewReader(payload))
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("submit question: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var body acceptedBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return SubmitOutcome{}, fmt.Errorf("decode response: %w", err)
		}
		return SubmitOutcome{Accepted: true, Message: body.Message, Question: body.Question}, nil
	default:
		return decodeRejection(resp.StatusCode, resp.Body), nil
	}
}

// decodeRejection handles the 4xx/5xx body shapes: a violation list or a
// plain message under "error". Any other body (a limiter response, a
// proxy page) still counts as an answer, not a transport failure, so it
// degrades to a generic rejection carrying the status code.
func decodeRejection(status int, r io.Reader) SubmitOutcome {
	var body rejectedBody
	if err := json.NewDecoder(r).Decode(&body); err == nil {
		var violations []models.Violation
		if err := json.Unmarshal(body.Error, &violations); err == nil && len(violations) > 0 {
			return SubmitOutcome{Violations: violations}
		}
		var message string
		if err := json.Unmarshal(body.Error, &message); err == nil && message != "" {
			return SubmitOutcome{Message: message}
		}
	}
	return SubmitOutcome{Message: fmt.Sprintf("The server rejected the request (status %d).", status)}
}
