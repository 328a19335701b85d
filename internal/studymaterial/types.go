package studymaterial

import (
	"fmt"
	"strings"
)

// Grade bounds accepted by the study material agent.
const (
	MinGrade = 1
	MaxGrade = 12
)

// Section is one titled block of study content.
type Section struct {
	SectionTitle string
	Content      string
}

// StudyMaterial is textbook-style study content for a subject and grade.
type StudyMaterial struct {
	Title              string
	GradeLevel         string
	Subject            string
	Overview           string
	LearningObjectives string
	Sections           []Section
	KeyConcepts        string
	PracticeProblems   string
}

// Input holds the parameters for study material generation.
type Input struct {
	Subject string
	Grade   int
	Topic   string
	Notes   string
}

// Validate checks the input before any model call is made.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Subject) == "" {
		return fmt.Errorf("subject must not be empty")
	}
	if in.Grade < MinGrade || in.Grade > MaxGrade {
		return fmt.Errorf("grade %d out of range: must be between %d and %d", in.Grade, MinGrade, MaxGrade)
	}
	return nil
}
