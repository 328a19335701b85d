package studymaterial

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/sahayak/internal/llm"
)

// Config holds study material generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for study material generation.
// Study material runs long, so the token budget is the largest of the
// three agents.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.5,
	}
}

// Service generates study materials from structured parameters.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study material generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type studyMaterialOutput struct {
	Title              string `json:"title"`
	GradeLevel         string `json:"grade_level"`
	Subject            string `json:"subject"`
	Overview           string `json:"overview"`
	LearningObjectives string `json:"learning_objectives"`
	Sections           []struct {
		SectionTitle string `json:"section_title"`
		Content      string `json:"content"`
	} `json:"sections"`
	KeyConcepts      string `json:"key_concepts"`
	PracticeProblems string `json:"practice_problems"`
}

// Generate runs the study material agent.
func (s *Service) Generate(ctx context.Context, in Input) (*StudyMaterial, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate study material input: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "study-material")

	req := llm.Request{
		System: studyMaterialSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStudyMaterialUserMessage(in)},
		},
		Schema:      StudyMaterialSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study material generation: %w", err)
	}

	var out studyMaterialOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse study material response: %w", err)
	}

	sm := &StudyMaterial{
		Title:              out.Title,
		GradeLevel:         out.GradeLevel,
		Subject:            out.Subject,
		Overview:           out.Overview,
		LearningObjectives: out.LearningObjectives,
		KeyConcepts:        out.KeyConcepts,
		PracticeProblems:   out.PracticeProblems,
	}
	for _, sec := range out.Sections {
		sm.Sections = append(sm.Sections, Section{
			SectionTitle: sec.SectionTitle,
			Content:      sec.Content,
		})
	}

	return sm, nil
}
