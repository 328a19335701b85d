package render

import (
	"fmt"
	"strings"

	"github.com/abhisek/sahayak/internal/lessonplan"
)

// TextRenderer turns a lesson plan into a plain-text byte stream.
type TextRenderer struct{}

// NewTextRenderer creates a text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// RenderLessonPlan formats the plan as a downloadable text document:
// a header block followed by one block per lesson, in order.
func (r *TextRenderer) RenderLessonPlan(plan *lessonplan.LessonPlan) []byte {
	var b strings.Builder

	rule := strings.Repeat("=", 64)
	thin := strings.Repeat("-", 64)

	b.WriteString(rule + "\n")
	b.WriteString(plan.Title + "\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(fmt.Sprintf("Grade Level:    %s\n", plan.GradeLevel))
	b.WriteString(fmt.Sprintf("Total Duration: %s\n\n", plan.TotalDuration))

	b.WriteString("Learning Goals\n")
	b.WriteString(thin + "\n")
	b.WriteString(plan.LearningGoals + "\n\n")

	b.WriteString("Overview\n")
	b.WriteString(thin + "\n")
	b.WriteString(plan.Overview + "\n\n")

	for _, l := range plan.Lessons {
		b.WriteString(fmt.Sprintf("Lesson %d: %s\n", l.LessonNumber, l.Title))
		b.WriteString(thin + "\n")
		b.WriteString(fmt.Sprintf("Duration: %s\n\n", l.Duration))
		b.WriteString(l.Content + "\n\n")
		b.WriteString("Key Learning Points:\n")
		b.WriteString(l.KeyLearningPoints + "\n\n")
	}

	return []byte(b.String())
}
