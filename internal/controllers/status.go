package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/service"
)

// StatusController serves the liveness probe and the session-registry
// metrics snapshots.
type StatusController struct {
	sessions *service.SessionService
}

// NewStatusController creates a new instance of StatusController bound to
// the session service it reads its counters from.
func NewStatusController(sessions *service.SessionService) *StatusController {
	return &StatusController{sessions: sessions}
}

// InitRoute mounts the health check and the metrics endpoints.
//
// Parameters:
//   - route: A Gin RouterGroup to which the status routes will be added.
//
// Returns:
//
//	An updated RouterGroup with the status routes initialized.
func (c *StatusController) InitRoute(route *gin.RouterGroup) *gin.RouterGroup {
	route.GET("/health", c.onHealth)
	route.GET("/metrics/online", c.onOnline)
	route.GET("/metrics/state", c.onState)
	return route
}

// GetRoute returns the base route path for the StatusController.
func (c *StatusController) GetRoute() string {
	return "/"
}

// onHealth responds with the UP marker, indicating the server is running.
//
// @Summary Check server status
// @Description Returns a simple status message indicating the server is operational
// @Tags Status
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Server status message"
// @Router /health [get]
func (c *StatusController) onHealth(ctx *gin.Context) {
	server.SuccessResponse(ctx, gin.H{"status": "UP"})
}

// onOnline reports the count of sessions live within the last 60 seconds.
//
// @Summary Count live sessions
// @Description Returns the number of sessions active in the last minute
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]int "Live session count"
// @Router /metrics/online [get]
func (c *StatusController) onOnline(ctx *gin.Context) {
	server.SuccessResponse(ctx, gin.H{"count": c.sessions.Online()})
}

// onState reports the raw registry index sizes.
//
// @Summary Registry index sizes
// @Description Returns the token and client index sizes of the session registry
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]int "Registry index sizes"
// @Router /metrics/state [get]
func (c *StatusController) onState(ctx *gin.Context) {
	sessions, clients := c.sessions.State()
	server.SuccessResponse(ctx, gin.H{"sessions": sessions, "clients": clients})
}
