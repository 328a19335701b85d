package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sahayak/internal/lessonplan"
	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/platform/logger"
	"github.com/abhisek/sahayak/internal/render"
	"github.com/abhisek/sahayak/internal/studymaterial"
	"github.com/abhisek/sahayak/internal/worksheet"
)

// maxImageBytes caps textbook page uploads at 10 MiB.
const maxImageBytes = 10 << 20

// WorksheetGenerator produces a worksheet from a textbook page image.
type WorksheetGenerator interface {
	Generate(ctx context.Context, in worksheet.Input) (*worksheet.Worksheet, error)
}

// LessonPlanGenerator produces a lesson plan from free-text requirements.
type LessonPlanGenerator interface {
	Generate(ctx context.Context, in lessonplan.Input) (*lessonplan.LessonPlan, error)
}

// StudyMaterialGenerator produces study material for a subject and grade.
type StudyMaterialGenerator interface {
	Generate(ctx context.Context, in studymaterial.Input) (*studymaterial.StudyMaterial, error)
}

// Handlers holds the HTTP endpoint implementations.
type Handlers struct {
	worksheets  WorksheetGenerator
	lessonPlans LessonPlanGenerator
	materials   StudyMaterialGenerator

	pdf  *render.PDFRenderer
	text *render.TextRenderer

	log          *logger.Logger
	modelTimeout time.Duration
}

// NewHandlers wires the endpoint implementations.
func NewHandlers(
	ws WorksheetGenerator,
	lp LessonPlanGenerator,
	sm StudyMaterialGenerator,
	pdf *render.PDFRenderer,
	text *render.TextRenderer,
	log *logger.Logger,
	modelTimeout time.Duration,
) *Handlers {
	if log == nil {
		log = logger.NewNop()
	}
	if modelTimeout <= 0 {
		modelTimeout = DefaultConfig().ModelTimeout
	}
	return &Handlers{
		worksheets:   ws,
		lessonPlans:  lp,
		materials:    sm,
		pdf:          pdf,
		text:         text,
		log:          log,
		modelTimeout: modelTimeout,
	}
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sahayak",
	})
}

func (h *Handlers) generateWorksheetFromImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing_image", fmt.Errorf("image file is required"))
		return
	}
	if fh.Size > maxImageBytes {
		respondError(c, http.StatusBadRequest, "image_too_large",
			fmt.Errorf("image exceeds %d bytes", maxImageBytes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "unreadable_image", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "unreadable_image", err)
		return
	}

	grade, err := parseGrade(c.PostForm("grade"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_grade", err)
		return
	}

	in := worksheet.Input{
		ImageData: data,
		ImageMIME: imageMIME(fh.Header.Get("Content-Type"), data),
		Grade:     grade,
		Subject:   strings.TrimSpace(c.PostForm("subject")),
		Topic:     strings.TrimSpace(c.PostForm("topic")),
		Notes:     strings.TrimSpace(c.PostForm("description")),
	}
	if err := in.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.modelTimeout)
	defer cancel()

	ws, err := h.worksheets.Generate(ctx, in)
	if err != nil {
		h.respondModelError(c, "worksheet generation failed", err)
		return
	}

	out, err := h.pdf.RenderWorksheet(ws)
	if err != nil {
		h.log.Error("worksheet pdf render failed", "error", err, "request_id", c.GetString(requestIDKey))
		respondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}

	sendAttachment(c, "worksheet.pdf", "application/pdf", out)
}

func (h *Handlers) generateLessonPlan(c *gin.Context) {
	in := lessonplan.Input{
		Requirements: strings.TrimSpace(c.PostForm("teacher_requirements")),
	}
	if err := in.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.modelTimeout)
	defer cancel()

	plan, err := h.lessonPlans.Generate(ctx, in)
	if err != nil {
		h.respondModelError(c, "lesson plan generation failed", err)
		return
	}

	sendAttachment(c, "lesson_plan.txt", "text/plain; charset=utf-8", h.text.RenderLessonPlan(plan))
}

func (h *Handlers) generateStudyMaterial(c *gin.Context) {
	grade, err := parseGrade(c.PostForm("grade"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_grade", err)
		return
	}

	in := studymaterial.Input{
		Subject: strings.TrimSpace(c.PostForm("subject")),
		Grade:   grade,
		Topic:   strings.TrimSpace(c.PostForm("topic")),
		Notes:   strings.TrimSpace(c.PostForm("description")),
	}
	if err := in.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.modelTimeout)
	defer cancel()

	sm, err := h.materials.Generate(ctx, in)
	if err != nil {
		h.respondModelError(c, "study material generation failed", err)
		return
	}

	out, err := h.pdf.RenderStudyMaterial(sm)
	if err != nil {
		h.log.Error("study material pdf render failed", "error", err, "request_id", c.GetString(requestIDKey))
		respondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}

	sendAttachment(c, "study_material.pdf", "application/pdf", out)
}

// respondModelError maps model-call failures onto HTTP statuses.
func (h *Handlers) respondModelError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, "error", err, "request_id", c.GetString(requestIDKey))

	var (
		rateLimit   *llm.ErrRateLimit
		unavailable *llm.ErrProviderUnavailable
		invalid     *llm.ErrInvalidResponse
		maxTokens   *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, "model_timeout", err)
	case errors.As(err, &rateLimit):
		respondError(c, http.StatusTooManyRequests, "rate_limited", err)
	case errors.As(err, &unavailable):
		respondError(c, http.StatusBadGateway, "model_unavailable", err)
	case errors.As(err, &invalid), errors.As(err, &maxTokens):
		respondError(c, http.StatusBadGateway, "model_error", err)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

func sendAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func parseGrade(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("grade is required")
	}
	grade, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("grade must be an integer: %q", raw)
	}
	return grade, nil
}

// imageMIME resolves the upload's media type. The declared multipart
// Content-Type wins when it names an image; otherwise the type is sniffed
// from the payload.
func imageMIME(declared string, data []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.Index(declared, ";"); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared == "image/jpg" {
		declared = "image/jpeg"
	}
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return http.DetectContentType(data)
}
