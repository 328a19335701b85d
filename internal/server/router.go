package server

import (
	"github.com/gin-gonic/gin"

	"github.com/abhisek/sahayak/internal/platform/logger"
)

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg Config, h *Handlers, log *logger.Logger) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware(cfg.AllowOrigins))

	r.GET("/", h.health)
	r.POST("/generate_worksheet_from_image", h.generateWorksheetFromImage)
	r.POST("/generate_lesson_plan", h.generateLessonPlan)
	r.POST("/generate_study_material", h.generateStudyMaterial)

	return r
}
