package studymaterial

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/sahayak/internal/llm"
)

func validStudyMaterialJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Photosynthesis Explained",
		"grade_level": "8",
		"subject": "Biology",
		"overview": "How plants turn light into food.",
		"learning_objectives": "Describe the inputs and outputs of photosynthesis.",
		"sections": [
			{"section_title": "Light Reactions", "content": "Chlorophyll absorbs light energy."},
			{"section_title": "The Calvin Cycle", "content": "Carbon dioxide becomes glucose."}
		],
		"key_concepts": "Chloroplast, chlorophyll, glucose.",
		"practice_problems": "1. Name the gas plants release."
	}`)
}

func TestService_GeneratesStudyMaterial(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStudyMaterialJSON()})
	svc := NewService(mock, DefaultConfig())

	sm, err := svc.Generate(context.Background(), Input{Subject: "Biology", Grade: 8, Topic: "Photosynthesis"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sm.Title != "Photosynthesis Explained" {
		t.Errorf("title = %q", sm.Title)
	}
	if len(sm.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sm.Sections))
	}
	if sm.KeyConcepts == "" || sm.PracticeProblems == "" {
		t.Error("expected key concepts and practice problems")
	}
}

func TestService_ValidatesInput(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"empty subject", Input{Subject: "", Grade: 5}},
		{"blank subject", Input{Subject: "  ", Grade: 5}},
		{"grade too low", Input{Subject: "Math", Grade: 0}},
		{"grade too high", Input{Subject: "Math", Grade: 13}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider()
			svc := NewService(mock, DefaultConfig())

			if _, err := svc.Generate(context.Background(), tc.in); err == nil {
				t.Fatal("expected validation error")
			}
			if mock.CallCount() != 0 {
				t.Error("model called before validation")
			}
		})
	}
}

func TestService_TopicAndNotesReachPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStudyMaterialJSON()})
	svc := NewService(mock, DefaultConfig())

	in := Input{Subject: "History", Grade: 10, Topic: "World War II", Notes: "Focus on primary sources"}
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"History", "World War II", "Focus on primary sources", "Grade Level: 10"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
