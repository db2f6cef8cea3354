package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizforge/mcq-server/models"
	"github.com/quizforge/mcq-server/store"
)

// QuestionController handles question submissions. The id generator is a
// field so tests can pin generated ids.
type QuestionController struct {
	Store store.QuestionStore
	NewID func() string
}

func NewQuestionController(st store.QuestionStore) *QuestionController {
	return &QuestionController{Store: st, NewID: uuid.NewString}
}

// SubmitQuestion accepts a candidate question, validates it and hands it to
// the store. Responses: 201 with the saved record, 400 with the full
// violation list, 400 with a message for an undecodable body, 500 when the
// store fails.
func (qc *QuestionController) SubmitQuestion(c *gin.Context) {
	var req models.SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "correctAnswerIndex" {
			// Non-integer index is a range violation, not a malformed body.
			c.JSON(http.StatusBadRequest, gin.H{"error": []models.Violation{models.IndexOutOfRange()}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is not a valid question payload"})
		return
	}

	if violations := models.Validate(req); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": violations})
		return
	}

	q := req.Normalize(qc.NewID)
	saved, err := qc.Store.Save(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save question"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Question added successfully",
		"question": saved,
	})
}
