package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sahayak/internal/lessonplan"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/platform/logger"
	"github.com/abhisek/sahayak/internal/render"
	"github.com/abhisek/sahayak/internal/studymaterial"
	"github.com/abhisek/sahayak/internal/worksheet"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfakepixels")

const worksheetJSON = `{
	"title": "Plant Life",
	"grade_level": 5,
	"subject": "science",
	"fill_in_blanks": [
		{"question_text": "Plants make food by ______.", "answer": "photosynthesis"}
	],
	"short_answers": [
		{"question": "Why are leaves green?", "expected_answer": "Chlorophyll."}
	]
}`

const lessonPlanJSON = `{
	"title": "Fractions Week",
	"grade_level": "5",
	"total_duration": "3 hours",
	"learning_goals": "Understand fractions.",
	"overview": "Three linked lessons.",
	"lessons": [
		{"lesson_number": 1, "title": "Halves", "duration": "60 minutes", "content": "Intro.", "key_learning_points": "Half means one of two."},
		{"lesson_number": 2, "title": "Quarters", "duration": "60 minutes", "content": "Practice.", "key_learning_points": "Quarter means one of four."}
	]
}`

const studyMaterialJSON = `{
	"title": "The Water Cycle",
	"grade_level": "6",
	"subject": "science",
	"overview": "How water moves.",
	"learning_objectives": "Name the stages.",
	"sections": [
		{"section_title": "Evaporation", "content": "Liquid to vapor."}
	],
	"key_concepts": "Evaporation, condensation.",
	"practice_problems": "1. What drives evaporation?"
}`

func newTestRouter(t *testing.T, responses ...llm.MockResponse) (*gin.Engine, *llm.MockProvider) {
	t.Helper()

	provider := llm.NewMockProvider(responses...)
	h := NewHandlers(
		worksheet.NewService(provider, worksheet.DefaultConfig()),
		lessonplan.NewService(provider, lessonplan.DefaultConfig()),
		studymaterial.NewService(provider, studymaterial.DefaultConfig()),
		render.NewPDFRenderer(render.DefaultPDFConfig()),
		render.NewTextRenderer(),
		logger.NewNop(),
		5*time.Second,
	)

	cfg := DefaultConfig()
	cfg.Mode = gin.TestMode
	return NewRouter(cfg, h, logger.NewNop()), provider
}

func worksheetForm(t *testing.T, fields map[string]string, image []byte, imageCT string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if image != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="page.png"`)
		hdr.Set("Content-Type", imageCT)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("unexpected status %q", body["status"])
	}
}

func TestGenerateWorksheet(t *testing.T) {
	router, provider := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(worksheetJSON)})

	body, ct := worksheetForm(t, map[string]string{"grade": "5", "subject": "science"}, pngBytes, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/generate_worksheet_from_image", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("unexpected content type %q", got)
	}
	if disp := rec.Header().Get("Content-Disposition"); !strings.Contains(disp, "worksheet.pdf") {
		t.Errorf("unexpected disposition %q", disp)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF stream")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(provider.Calls))
	}
	msg := provider.Calls[0].Messages[len(provider.Calls[0].Messages)-1]
	if len(msg.Images) != 1 || msg.Images[0].MIMEType != "image/png" {
		t.Error("uploaded image did not reach the model request")
	}
}

func TestGenerateWorksheet_GradeOutOfRange(t *testing.T) {
	router, provider := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(worksheetJSON)})

	for _, grade := range []string{"0", "13", "-2"} {
		body, ct := worksheetForm(t, map[string]string{"grade": grade}, pngBytes, "image/png")
		req := httptest.NewRequest(http.MethodPost, "/generate_worksheet_from_image", body)
		req.Header.Set("Content-Type", ct)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("grade %s: expected 400, got %d", grade, rec.Code)
		}
	}
	if len(provider.Calls) != 0 {
		t.Errorf("model was called %d times for invalid grades", len(provider.Calls))
	}
}

func TestGenerateWorksheet_RejectsNonImage(t *testing.T) {
	router, provider := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(worksheetJSON)})

	body, ct := worksheetForm(t, map[string]string{"grade": "5"}, []byte("plain text, not a picture"), "text/plain")
	req := httptest.NewRequest(http.MethodPost, "/generate_worksheet_from_image", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(provider.Calls) != 0 {
		t.Error("model must not be called for non-image uploads")
	}
}

func TestGenerateWorksheet_MissingImage(t *testing.T) {
	router, _ := newTestRouter(t)

	body, ct := worksheetForm(t, map[string]string{"grade": "5"}, nil, "")
	req := httptest.NewRequest(http.MethodPost, "/generate_worksheet_from_image", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateLessonPlan(t *testing.T) {
	router, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(lessonPlanJSON)})

	form := strings.NewReader("teacher_requirements=" + "fractions for grade 5, 3 hours")
	req := httptest.NewRequest(http.MethodPost, "/generate_lesson_plan", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("unexpected content type %q", ct)
	}
	out := rec.Body.String()
	for _, want := range []string{"Fractions Week", "Lesson 1: Halves", "Lesson 2: Quarters"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateLessonPlan_EmptyRequirements(t *testing.T) {
	router, provider := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(lessonPlanJSON)})

	for _, payload := range []string{"", "teacher_requirements=", "teacher_requirements=%20%20"} {
		req := httptest.NewRequest(http.MethodPost, "/generate_lesson_plan", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected 400, got %d", payload, rec.Code)
		}
	}
	if len(provider.Calls) != 0 {
		t.Errorf("model was called %d times for empty requirements", len(provider.Calls))
	}
}

func TestGenerateStudyMaterial(t *testing.T) {
	router, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(studyMaterialJSON)})

	form := strings.NewReader("subject=science&grade=6&topic=water+cycle")
	req := httptest.NewRequest(http.MethodPost, "/generate_study_material", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("unexpected content type %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF stream")
	}
}

func TestGenerateWorksheet_ProviderUnavailable(t *testing.T) {
	router, _ := newTestRouter(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	body, ct := worksheetForm(t, map[string]string{"grade": "5"}, pngBytes, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/generate_worksheet_from_image", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if env.Error.Code != "model_unavailable" {
		t.Errorf("unexpected error code %q", env.Error.Code)
	}
}
