package models

// StudyPlanParams are the inputs to the study-plan generator. ExamDate is a
// YYYY-MM-DD string; anything unparsable or already past is replaced with
// thirty days from now before the plan is generated.
type StudyPlanParams struct {
	Topics      []string `json:"topics"`
	ExamDate    string   `json:"exam_date"`
	HoursPerDay int      `json:"hours_per_day"`
}

// TaskMetadata carries the branch-specific fields of a ToolResult. Only the
// fields relevant to the branch that ran are populated.
type TaskMetadata struct {
	Marks         int      `json:"marks,omitempty"`
	Topic         string   `json:"topic,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	NumQuestions  int      `json:"num_questions,omitempty"`
	NumCards      int      `json:"num_cards,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	ExamDate      string   `json:"exam_date,omitempty"`
	DaysAvailable int      `json:"days_available,omitempty"`
	HoursPerDay   int      `json:"hours_per_day,omitempty"`
	DateAdjusted  bool     `json:"date_adjusted,omitempty"`
	GeneratedAt   string   `json:"generated_at,omitempty"`
}

// TaskResult is the output of a single templated generation task.
type TaskResult struct {
	Answer   string       `json:"answer"`
	Metadata TaskMetadata `json:"metadata"`
}
