package router

import (
	"net/http"
	"time"

	handlers "github.com/digitalshield/shield/pkg/handlers/http"
	wsHandlers "github.com/digitalshield/shield/pkg/handlers/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const (
	HealthPath   = "/health"
	AlertsWsPath = "/api/v1/alerts/ws"
)

type apiRouter struct {
	handlerTransport   handlers.HandlerTransport
	wsHandlerTransport wsHandlers.HandlerTransport
}

func NewAPIRouter(
	handlerTransport handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		handlerTransport:   handlerTransport,
		wsHandlerTransport: wsHandlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Use(AlertsWsPath, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get(AlertsWsPath, websocket.New(
		r.wsHandlerTransport.AlertsHandler.Handle,
		websocket.Config{
			HandshakeTimeout: 15 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		},
	))

	v1 := router.Group("/api/v1")
	{
		v1.Post("/analyze", r.handlerTransport.AnalyzeHandler.Handle)

		analyses := v1.Group("/analyses")
		{
			analyses.Get("", r.handlerTransport.ListAnalysesHandler.Handle)
			analyses.Post("/:session_id/safer-version", r.handlerTransport.GenerateSaferVersionHandler.Handle)
			analyses.Post("/:session_id/advice", r.handlerTransport.GenerateAdviceHandler.Handle)
			analyses.Post("/:session_id/save", r.handlerTransport.SaveAnalysisHandler.Handle)
			analyses.Delete("/:session_id", r.handlerTransport.DisposeSessionHandler.Handle)
			analyses.Delete("/records/:record_id", r.handlerTransport.DeleteAnalysisHandler.Handle)
		}

		v1.Get("/review-queue", r.handlerTransport.ReviewQueueHandler.Handle)

		tips := v1.Group("/safety-tips")
		{
			tips.Post("", r.handlerTransport.CreateSafetyTipHandler.Handle)
			tips.Get("", r.handlerTransport.ListSafetyTipsHandler.Handle)
		}
	}

	return nil
}
