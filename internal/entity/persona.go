package entity

// Persona is the ideal customer profile the sender is targeting.
type Persona struct {
	Name         string       `json:"name"`
	ICPQuestions ICPQuestions `json:"icpQuestions"`
}

// ICPQuestions holds the free-text answers used to steer tone.
type ICPQuestions struct {
	USP             *string `json:"usp,omitempty"`
	Industry        *string `json:"industry,omitempty"`
	CustomerSupport *string `json:"customerSupport,omitempty"`
}

// Value dereferences an optional answer, nil becomes "".
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
