package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Pipeline
	AnalyzeHandler              Handler
	GenerateSaferVersionHandler Handler
	GenerateAdviceHandler       Handler
	DisposeSessionHandler       Handler

	// History
	SaveAnalysisHandler   Handler
	ListAnalysesHandler   Handler
	DeleteAnalysisHandler Handler

	// Moderation
	ReviewQueueHandler Handler

	// Safety tips
	CreateSafetyTipHandler Handler
	ListSafetyTipsHandler  Handler
}
