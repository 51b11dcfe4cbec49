package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/seabattle-server/internal/config"
	"github.com/vovakirdan/seabattle-server/internal/core"
)

const landingPage = `<!DOCTYPE html>
<html>
<head><title>seabattle-server</title></head>
<body>
<h1>seabattle-server</h1>
<p>Game traffic goes over the websocket endpoint at <code>/ws</code>.</p>
</body>
</html>
`

// StatsResponse is the body of the stats endpoint.
type StatsResponse struct {
	Clients int `json:"clients"`
	Rooms   int `json:"rooms"`
	Waiting int `json:"waiting"`
}

// NewServer builds the HTTP server: the websocket endpoint plus the plain
// request/response surface (health, landing page, stats) sharing the port.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/", landingHandler)
	router.GET("/health", healthHandler)
	router.GET("/stats", statsHandler(hub))
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func landingHandler(c *gin.Context) {
	c.Data(stdhttp.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

func statsHandler(hub *core.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, rooms, waiting := hub.Stats()
		c.JSON(stdhttp.StatusOK, StatsResponse{
			Clients: clients,
			Rooms:   rooms,
			Waiting: waiting,
		})
	}
}
