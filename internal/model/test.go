package model

import "time"

// Option is one selectable answer for a question. Score carries the
// instrument-specific weight (Likert value, MBTI letter code, reverse-coded
// value). It is stripped from API responses unless the caller asks for it.
type Option struct {
	ID    string `json:"id" bson:"id"`
	Text  string `json:"text" bson:"text"`
	Score int    `json:"score,omitempty" bson:"score"`
}

// Question is one item of an instrument. OrderIndex is 1-based and defines
// the scoring-relevant position within the instrument.
type Question struct {
	ID         string   `json:"id" bson:"id"`
	Text       string   `json:"text" bson:"text"`
	OrderIndex int      `json:"order_index" bson:"orderIndex"`
	Options    []Option `json:"options" bson:"options"`
}

// ResultRange is a stored score band. MaxScore nil means "MinScore and
// unbounded above". DimensionCode empty means the range applies to the total.
type ResultRange struct {
	MinScore      int    `json:"min_score" bson:"minScore"`
	MaxScore      *int   `json:"max_score,omitempty" bson:"maxScore,omitempty"`
	ResultRange   string `json:"result_range" bson:"resultRange"`
	Description   string `json:"description,omitempty" bson:"description,omitempty"`
	DimensionCode string `json:"dimension_code,omitempty" bson:"dimensionCode,omitempty"`
}

// Test is a complete instrument definition as stored and served: questions
// with options plus the stored result ranges. TestType is the stable
// instrument key (e.g. "bsrs5", "mbti") that selects the scoring spec.
type Test struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	TestType    string        `json:"test_type" bson:"testType"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Questions   []Question    `json:"questions" bson:"questions"`
	Results     []ResultRange `json:"results,omitempty" bson:"results,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"createdAt"`
}

// QuestionByID returns the question with the given id.
func (t *Test) QuestionByID(id string) *Question {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i]
		}
	}
	return nil
}

// OptionByID returns the option with the given id, or nil if it does not
// belong to this question.
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// StripScores returns a copy of the test safe to hand to a test taker:
// option score weights and result ranges removed.
func (t *Test) StripScores() *Test {
	out := *t
	out.Results = nil
	out.Questions = make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		sq := q
		sq.Options = make([]Option, len(q.Options))
		for j, opt := range q.Options {
			sq.Options[j] = Option{ID: opt.ID, Text: opt.Text}
		}
		out.Questions[i] = sq
	}
	return &out
}
