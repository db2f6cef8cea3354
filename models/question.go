package models

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question is the canonical MCQ record: one prompt, four options, one
// correct selection.
type Question struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// SubmitQuestionRequest is the candidate record as received on the wire.
// ID is a pointer so an absent id (endpoint assigns one) can be told apart
// from a supplied empty one (a violation). CorrectAnswerIndex is a pointer
// for the same reason: a missing index must not validate as slot 0.
type SubmitQuestionRequest struct {
	ID                 *string  `json:"id" validate:"-"`
	QuestionText       string   `json:"questionText" validate:"required"`
	Options            []string `json:"options" validate:"len=4"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex" validate:"required,gte=0,lte=3"`
}

// Normalize builds the canonical Question from an already-validated
// request. newID is consulted only when the request carries no id.
func (r SubmitQuestionRequest) Normalize(newID func() string) Question {
	id := ""
	if r.ID != nil {
		id = *r.ID
	} else if newID != nil {
		id = newID()
	}
	opts := make([]string, len(r.Options))
	copy(opts, r.Options)
	idx := 0
	if r.CorrectAnswerIndex != nil {
		idx = *r.CorrectAnswerIndex
	}
	return Question{
		ID:                 id,
		QuestionText:       r.QuestionText,
		Options:            opts,
		CorrectAnswerIndex: idx,
	}
}
