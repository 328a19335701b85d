package lessonplan

import (
	"fmt"
	"strings"
)

const lessonPlanSystemPrompt = `You are a helpful lesson planning assistant for teachers. You will be given a description from a teacher that may or may not include topic, grade level, number of lessons, duration, learning objectives, and other specific requirements. The input may be very detailed or just a simple topic - adapt accordingly. Create a comprehensive lesson plan with individual lessons. Make the content age-appropriate, engaging, and educationally sound. Include diverse teaching methods (discussion, hands-on activities, multimedia, etc.). Ensure lessons build upon each other logically. Be specific about activities and learning outcomes. If number of lessons isn't specified, create 5-8 lessons. If duration isn't specified, assume 60-minute class periods.`

func buildLessonPlanUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Create a comprehensive lesson plan based on the following requirements:\n\n")
	b.WriteString(fmt.Sprintf("Teacher Requirements: %s\n", strings.TrimSpace(in.Requirements)))

	b.WriteString(`
If any key details are missing (grade level, number of lessons, duration), make reasonable assumptions based on the topic. Make the content age-appropriate and engaging.`)

	return b.String()
}
