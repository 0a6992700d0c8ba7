package scoring

// DimensionResult is the scored outcome of one dimension.
type DimensionResult struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Label     string  `json:"label"`
	Narrative string  `json:"narrative,omitempty"`
	Color     string  `json:"color,omitempty"`
	Primary   bool    `json:"primary"`
}

// AnswerDetail is a per-answer explanation line for instruments that carry
// an explanation table (ljsi).
type AnswerDetail struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// Anomaly records a score that fell outside every band of its table. The
// classifier clamps to the last band; the anomaly is surfaced so callers can
// log it. It is never a user-facing error.
type Anomaly struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
}

// Result is the assembled outcome of scoring one complete answer set.
// TotalScore is the primary dimension's score rounded toward zero, or the
// encoded type score for letter-tally instruments.
type Result struct {
	InstrumentKey string            `json:"instrument_key"`
	Label         string            `json:"label"`
	Narrative     string            `json:"narrative,omitempty"`
	TotalScore    int               `json:"total_score"`
	TypeCode      string            `json:"type_code,omitempty"`
	Dimensions    []DimensionResult `json:"dimensions,omitempty"`
	Details       []AnswerDetail    `json:"details,omitempty"`
	Anomalies     []Anomaly         `json:"anomalies,omitempty"`
}

// Dimension returns the dimension result with the given code.
func (r *Result) Dimension(code string) *DimensionResult {
	for i := range r.Dimensions {
		if r.Dimensions[i].Code == code {
			return &r.Dimensions[i]
		}
	}
	return nil
}
