package model

import "time"

// UserAnswer pairs a question with the option the user selected.
type UserAnswer struct {
	QuestionID       string `json:"question_id" bson:"questionId"`
	SelectedOptionID string `json:"selected_option_id" bson:"selectedOptionId"`
}

// Submission is the body of POST /tests/{id}/submit.
type Submission struct {
	UserID  string       `json:"user_id"`
	Answers []UserAnswer `json:"answers"`
}

// SessionDimension is one scored dimension of a completed session.
type SessionDimension struct {
	DimensionCode string  `json:"dimension_code" bson:"dimensionCode"`
	Score         float64 `json:"score" bson:"score"`
	ResultRange   string  `json:"result_range" bson:"resultRange"`
}

// Session is one completed assessment run: the raw answers, the total score
// and the resolved result label, plus per-dimension results for
// multi-dimensional instruments.
type Session struct {
	ID         string             `json:"id" bson:"_id,omitempty"`
	UserID     string             `json:"user_id" bson:"userId"`
	TestID     string             `json:"test_id" bson:"testId"`
	TestType   string             `json:"test_type" bson:"testType"`
	Result     string             `json:"result" bson:"result"`
	TotalScore int                `json:"total_score" bson:"totalScore"`
	Answers    []UserAnswer       `json:"answers" bson:"answers"`
	Dimensions []SessionDimension `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"createdAt"`
}
