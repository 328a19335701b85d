package lessonplan

import (
	"fmt"
	"strings"
)

// Lesson is one unit within a lesson plan.
type Lesson struct {
	LessonNumber      int
	Title             string
	Duration          string
	Content           string
	KeyLearningPoints string
}

// LessonPlan is a generated multi-lesson teaching outline.
type LessonPlan struct {
	Title         string
	GradeLevel    string
	TotalDuration string
	LearningGoals string
	Overview      string
	Lessons       []Lesson
}

// Input holds the teacher's free-text requirements. The text may be a bare
// topic or a detailed brief; the model fills in whatever is unspecified.
type Input struct {
	Requirements string
}

// Validate rejects empty requirements before any model call.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Requirements) == "" {
		return fmt.Errorf("teacher requirements must not be empty")
	}
	return nil
}
