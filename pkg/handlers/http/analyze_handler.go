package http

import (
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	"github.com/digitalshield/shield/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// DefaultModel is used when the caller does not pick one, mirroring the
// scanner UI's preselected choice.
const DefaultModel = "gemini"

type analyzeHandler struct {
	logger   *logrus.Logger
	pipeline *appAnalysis.Pipeline
}

func NewAnalyzeHandler(logger *logrus.Logger, pipeline *appAnalysis.Pipeline) Handler {
	return &analyzeHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (h *analyzeHandler) Handle(c *fiber.Ctx) error {
	var req request.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	snapshot, err := h.pipeline.Analyze(c.Context(), req.Text, model)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session_id":       snapshot.ID,
		"toxicityScore":    snapshot.Verdict.Score,
		"categories":       snapshot.Verdict.Categories,
		"highlightedWords": snapshot.Verdict.HighlightedWords,
		"severity":         snapshot.Verdict.Severity,
		"explanation":      snapshot.Verdict.Explanation,
		"modelUsed":        model,
	})
}
