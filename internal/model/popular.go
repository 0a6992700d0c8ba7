package model

// PopularTest is a catalog entry ranked by completed session count.
type PopularTest struct {
	ID           string `json:"id"`
	TestType     string `json:"test_type"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	SessionCount int64  `json:"session_count"`
}
