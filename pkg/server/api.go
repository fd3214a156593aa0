package server

import (
	"fmt"

	"github.com/digitalshield/shield/pkg/config"
	handlers "github.com/digitalshield/shield/pkg/handlers/http"
	wsHandlers "github.com/digitalshield/shield/pkg/handlers/websocket"
	"github.com/digitalshield/shield/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config             *config.Config
		Logger             *logrus.Logger
		HandlerTransport   handlers.HandlerTransport
		WsHandlerTransport wsHandlers.HandlerTransport
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	base := NewBaseServer(di.Config, di.Logger).
		WithRouters(router.NewAPIRouter(di.HandlerTransport, di.WsHandlerTransport))
	return &APIServer{BaseServer: base}
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	return s.Router.Shutdown()
}
