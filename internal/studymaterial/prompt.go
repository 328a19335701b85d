package studymaterial

import (
	"fmt"
	"strings"
)

const studyMaterialSystemPrompt = `You are an educational content creator that writes detailed, comprehensive study materials to help teachers. Create educational content that teaches concepts thoroughly with detailed explanations, examples, and practice problems.

Guidelines:
- Provide clear, thorough explanations of concepts
- Include concrete examples with step-by-step solutions
- Add real-world applications to make concepts relevant
- Use engaging language appropriate for the target audience
- Include practice problems when helpful
- Focus on depth and understanding over breadth
- Organize content into logical sections and subsections

Write as if explaining directly to students, using analogies and relatable examples. Make the content comprehensive enough to serve as primary study material. If grade level or other details aren't specified, make reasonable assumptions based on topic complexity.`

func buildStudyMaterialUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Create comprehensive study material with the following specifications:\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\n", in.Subject))
	b.WriteString(fmt.Sprintf("Grade Level: %d\n", in.Grade))

	if in.Topic != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	}
	if in.Notes != "" {
		b.WriteString(fmt.Sprintf("Additional Instructions: %s\n", in.Notes))
	}

	b.WriteString(fmt.Sprintf(
		"\nPlease create study material appropriate for grade %d students in %s. Cover the topic thoroughly with sections, worked examples, key concepts, and practice problems.",
		in.Grade, in.Subject))

	return b.String()
}
