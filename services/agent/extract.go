package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"studybuddy/models"
	"studybuddy/services/llm"
)

type studyPlanExtraction struct {
	Topics      []string `json:"topics" jsonschema_description:"Topics the student wants to cover, empty if not mentioned"`
	ExamDate    string   `json:"exam_date" jsonschema_description:"Exam date in YYYY-MM-DD format, empty if not mentioned"`
	HoursPerDay int      `json:"hours_per_day" jsonschema_description:"Study hours per day, 0 if not mentioned"`
}

// extractStudyPlanParams pulls topics, exam date and daily hours out of a
// free-form question via a forced tool call. Extraction failures fall back
// to zero values so the study plan generator applies its own defaults.
func (s *Service) extractStudyPlanParams(ctx context.Context, question string) models.StudyPlanParams {
	tool := llm.ToolSpec{
		Name:        "set_study_plan_params",
		Description: "Record the study plan parameters found in the student's request",
		Input:       studyPlanExtraction{},
	}

	prompt := fmt.Sprintf("Extract study plan parameters from this question: %q", question)

	arguments, err := s.model.InvokeWithTool(ctx, extractionSystemPrompt, prompt, tool)
	if err != nil {
		log.Printf("[WARN] Study plan parameter extraction failed, using defaults: %v", err)
		return models.StudyPlanParams{}
	}

	var extracted studyPlanExtraction
	if err := json.Unmarshal([]byte(arguments), &extracted); err != nil {
		log.Printf("[WARN] Failed to parse extracted study plan parameters, using defaults: %v", err)
		return models.StudyPlanParams{}
	}

	return models.StudyPlanParams{
		Topics:      extracted.Topics,
		ExamDate:    extracted.ExamDate,
		HoursPerDay: extracted.HoursPerDay,
	}
}
