package worksheet

import (
	"fmt"
	"strings"
)

const worksheetSystemPrompt = `You are a helpful worksheet assistant. You will be given an image of a textbook page, and you will need to create a structured worksheet based on the content of the page. Create a worksheet that has 6-8 fill-in-the-blank questions and 4-6 short answer questions. Adjust the difficulty and language complexity appropriately for the specified grade level. For fill-in-the-blank questions, use clear blanks like ______ in the question text. For short answer questions, create questions that require 1-3 sentence responses. Make sure all content is educationally appropriate and directly relates to the textbook content shown.`

func buildWorksheetUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Create a structured worksheet based on the content of the page. ")
	b.WriteString(fmt.Sprintf("Make the worksheet appropriate for grade %d students. ", in.Grade))
	b.WriteString(fmt.Sprintf("Adjust the difficulty level, vocabulary, and question complexity to match grade %d standards. ", in.Grade))
	b.WriteString("Focus on creating fill-in-the-blank questions and short answer questions that test comprehension of the key concepts from this textbook page.")

	if in.Subject != "" {
		b.WriteString(fmt.Sprintf("\n\nSubject: %s", in.Subject))
	}
	if in.Topic != "" {
		b.WriteString(fmt.Sprintf("\nTopic: %s", in.Topic))
	}
	if in.Notes != "" {
		b.WriteString(fmt.Sprintf("\nAdditional Instructions: %s", in.Notes))
	}

	return b.String()
}
