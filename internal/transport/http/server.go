package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sketchwire/sketchwire-server/internal/config"
	"github.com/sketchwire/sketchwire-server/internal/core"
)

// NewServer builds the HTTP server: the WebSocket session endpoint plus the
// REST inspection routes. The WebSocket handler is mounted on the parent mux
// rather than through gin, whose response writer refuses the hijack that the
// upgrade needs.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(LoggerMiddleware(logger), gin.Recovery())

	router.GET("/healthz", healthHandler)

	api := NewAPIHandlers(hub, logger)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/rooms", api.ListRooms)
		v1.GET("/rooms/:code", api.GetRoom)
	}

	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(hub, cfg.WSMsgPerMinute, logger))
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
