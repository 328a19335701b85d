package worksheet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/sahayak/internal/llm"
)

// Config holds worksheet generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for worksheet generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}

// Service generates worksheets from textbook page images.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a worksheet generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type worksheetOutput struct {
	Title        string `json:"title"`
	GradeLevel   int    `json:"grade_level"`
	Subject      string `json:"subject"`
	FillInBlanks []struct {
		QuestionText string `json:"question_text"`
		Answer       string `json:"answer"`
	} `json:"fill_in_blanks"`
	ShortAnswers []struct {
		Question       string `json:"question"`
		ExpectedAnswer string `json:"expected_answer"`
	} `json:"short_answers"`
}

// Generate runs the worksheet agent against the provided textbook page.
// The call is synchronous; one model round-trip per request.
func (s *Service) Generate(ctx context.Context, in Input) (*Worksheet, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate worksheet input: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "worksheet")

	req := llm.Request{
		System: worksheetSystemPrompt,
		Messages: []llm.Message{
			{
				Role:    llm.RoleUser,
				Content: buildWorksheetUserMessage(in),
				Images: []llm.Image{
					{MIMEType: in.ImageMIME, Data: in.ImageData},
				},
			},
		},
		Schema:      WorksheetSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("worksheet generation: %w", err)
	}

	var out worksheetOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse worksheet response: %w", err)
	}

	ws := &Worksheet{
		Title:      out.Title,
		GradeLevel: out.GradeLevel,
		Subject:    out.Subject,
	}
	if ws.GradeLevel == 0 {
		ws.GradeLevel = in.Grade
	}
	for _, q := range out.FillInBlanks {
		ws.FillInBlanks = append(ws.FillInBlanks, FillInBlank{
			QuestionText: q.QuestionText,
			Answer:       q.Answer,
		})
	}
	for _, q := range out.ShortAnswers {
		ws.ShortAnswers = append(ws.ShortAnswers, ShortAnswer{
			Question:       q.Question,
			ExpectedAnswer: q.ExpectedAnswer,
		})
	}

	return ws, nil
}
