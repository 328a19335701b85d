package worksheet

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/sahayak/internal/llm"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func validWorksheetJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "The Water Cycle",
		"grade_level": 4,
		"subject": "Science",
		"fill_in_blanks": [
			{"question_text": "Water turns into vapor through ______.", "answer": "evaporation"},
			{"question_text": "Clouds form through ______.", "answer": "condensation"}
		],
		"short_answers": [
			{"question": "Why does it rain?", "expected_answer": "Water droplets in clouds grow heavy and fall."}
		]
	}`)
}

func validInput() Input {
	return Input{
		ImageData: pngHeader,
		ImageMIME: "image/png",
		Grade:     4,
	}
}

func TestService_GeneratesWorksheet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON()})
	svc := NewService(mock, DefaultConfig())

	ws, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ws.Title != "The Water Cycle" {
		t.Errorf("title = %q, want 'The Water Cycle'", ws.Title)
	}
	if ws.GradeLevel != 4 {
		t.Errorf("grade = %d, want 4", ws.GradeLevel)
	}
	if len(ws.FillInBlanks) != 2 {
		t.Errorf("fill-in-blanks = %d, want 2", len(ws.FillInBlanks))
	}
	if len(ws.ShortAnswers) != 1 {
		t.Errorf("short answers = %d, want 1", len(ws.ShortAnswers))
	}
	if ws.FillInBlanks[0].Answer != "evaporation" {
		t.Errorf("answer = %q, want evaporation", ws.FillInBlanks[0].Answer)
	}
}

func TestService_SendsImageAndGradePrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON()})
	svc := NewService(mock, DefaultConfig())

	in := validInput()
	in.Subject = "Science"
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if len(req.Messages) != 1 || len(req.Messages[0].Images) != 1 {
		t.Fatal("expected one user message carrying one image")
	}
	if req.Messages[0].Images[0].MIMEType != "image/png" {
		t.Errorf("image mime = %q, want image/png", req.Messages[0].Images[0].MIMEType)
	}
	if req.Schema == nil || req.Schema.Name != "worksheet" {
		t.Error("expected the worksheet schema on the request")
	}
}

func TestService_GradeOutOfRange(t *testing.T) {
	for _, grade := range []int{0, -1, 13, 100} {
		mock := llm.NewMockProvider()
		svc := NewService(mock, DefaultConfig())

		in := validInput()
		in.Grade = grade
		_, err := svc.Generate(context.Background(), in)
		if err == nil {
			t.Fatalf("grade %d: expected error", grade)
		}
		if mock.CallCount() != 0 {
			t.Errorf("grade %d: model called before validation", grade)
		}
	}
}

func TestService_RejectsNonImageMIME(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	in := validInput()
	in.ImageMIME = "application/pdf"
	_, err := svc.Generate(context.Background(), in)
	if err == nil {
		t.Fatal("expected error for non-image upload")
	}
	if mock.CallCount() != 0 {
		t.Error("model called for invalid input")
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable in chain, got %v", err)
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": 42}`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected parse error for malformed response")
	}
}

func TestService_FallsBackToRequestedGrade(t *testing.T) {
	// Model omitting grade_level=0 falls back to the requested grade.
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"title": "T", "grade_level": 0, "subject": "S",
		"fill_in_blanks": [{"question_text": "a ______", "answer": "b"}],
		"short_answers": [{"question": "q", "expected_answer": "e"}]
	}`)})
	svc := NewService(mock, DefaultConfig())

	in := validInput()
	in.Grade = 7
	ws, err := svc.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.GradeLevel != 7 {
		t.Errorf("grade = %d, want fallback 7", ws.GradeLevel)
	}
}
