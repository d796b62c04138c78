package examtools

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"studybuddy/models"
)

const (
	dateLayout      = "2006-01-02"
	fallbackDays    = 30
	defaultHoursDay = 3
)

// GenerateStudyPlan produces a day-by-day schedule. Exam dates that are
// missing, malformed, or fewer than one day away are replaced with thirty
// days from now; the substitution is reported through DateAdjusted so
// callers can warn the user.
func (s *Service) GenerateStudyPlan(ctx context.Context, params models.StudyPlanParams) (*models.TaskResult, error) {
	log.Printf("[INFO] Generating study plan for %d topics", len(params.Topics))

	topics := params.Topics
	if len(topics) == 0 {
		topics = []string{"General Topics"}
	}

	hoursPerDay := params.HoursPerDay
	if hoursPerDay <= 0 {
		hoursPerDay = defaultHoursDay
	}

	examDate, daysAvailable, adjusted := normalizeExamDate(params.ExamDate, s.now())
	if adjusted {
		log.Printf("[WARN] Exam date %q was invalid or in the past, rescheduled to %s", params.ExamDate, examDate)
	}

	var topicList strings.Builder
	for _, topic := range topics {
		topicList.WriteString(fmt.Sprintf("- %s\n", topic))
	}

	prompt := fmt.Sprintf(studyPlanPrompt, examDate, daysAvailable, topicList.String(), daysAvailable, hoursPerDay)

	plan, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to generate study plan: %v", err)
		return nil, fmt.Errorf("failed to generate study plan: %w", err)
	}

	return &models.TaskResult{
		Answer: plan,
		Metadata: models.TaskMetadata{
			Topics:        topics,
			ExamDate:      examDate,
			DaysAvailable: daysAvailable,
			HoursPerDay:   hoursPerDay,
			DateAdjusted:  adjusted,
			GeneratedAt:   s.timestamp(),
		},
	}, nil
}

// normalizeExamDate validates a YYYY-MM-DD exam date against now. It
// returns the date actually used, the whole days remaining until it, and
// whether a substitution happened.
func normalizeExamDate(raw string, now time.Time) (string, int, bool) {
	fallback := now.AddDate(0, 0, fallbackDays)

	exam, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return fallback.Format(dateLayout), fallbackDays, true
	}

	days := int(exam.Sub(now).Hours() / 24)
	if days < 1 {
		return fallback.Format(dateLayout), fallbackDays, true
	}

	return exam.Format(dateLayout), days, false
}
