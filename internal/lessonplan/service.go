package lessonplan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/sahayak/internal/llm"
)

// Config holds lesson plan generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for lesson plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.5,
	}
}

// Service generates lesson plans from free-text teacher requirements.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson planning service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonPlanOutput struct {
	Title         string `json:"title"`
	GradeLevel    string `json:"grade_level"`
	TotalDuration string `json:"total_duration"`
	LearningGoals string `json:"learning_goals"`
	Overview      string `json:"overview"`
	Lessons       []struct {
		LessonNumber      int    `json:"lesson_number"`
		Title             string `json:"title"`
		Duration          string `json:"duration"`
		Content           string `json:"content"`
		KeyLearningPoints string `json:"key_learning_points"`
	} `json:"lessons"`
}

// Generate runs the lesson planner agent.
func (s *Service) Generate(ctx context.Context, in Input) (*LessonPlan, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate lesson plan input: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "lesson-plan")

	req := llm.Request{
		System: lessonPlanSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonPlanUserMessage(in)},
		},
		Schema:      LessonPlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson plan generation: %w", err)
	}

	var out lessonPlanOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson plan response: %w", err)
	}

	plan := &LessonPlan{
		Title:         out.Title,
		GradeLevel:    out.GradeLevel,
		TotalDuration: out.TotalDuration,
		LearningGoals: out.LearningGoals,
		Overview:      out.Overview,
	}
	for _, l := range out.Lessons {
		plan.Lessons = append(plan.Lessons, Lesson{
			LessonNumber:      l.LessonNumber,
			Title:             l.Title,
			Duration:          l.Duration,
			Content:           l.Content,
			KeyLearningPoints: l.KeyLearningPoints,
		})
	}

	return plan, nil
}
