package controller

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/launch"
	"github.com/fugaso-go/slot-core/internal/server"
)

// LaunchController builds game launch URLs off the cached host list: one
// admissible host is picked uniformly at random per request, falling back
// to the request's X-Forwarded-Host when none exist.
type LaunchController struct {
	cfg    *config.LaunchConfig
	picker *launch.Picker
}

// NewLaunchController initializes a LaunchController bound to the host
// picker.
func NewLaunchController(cfg *config.LaunchConfig, picker *launch.Picker) *LaunchController {
	return &LaunchController{cfg: cfg, picker: picker}
}

// GetRoute returns the base route path for LaunchController.
func (c *LaunchController) GetRoute() string {
	return "/launch"
}

// InitRoute mounts the launch endpoint for both GET and POST.
func (c *LaunchController) InitRoute(route *gin.RouterGroup) *gin.RouterGroup {
	route.GET("", c.launch)
	route.POST("", c.launch)
	return route
}

func (c *LaunchController) launch(ctx *gin.Context) {
	host := c.cfg.GamesDomain
	if host == "" {
		host = c.picker.Pick(ctx.Request.Context(), ctx.GetHeader("X-Forwarded-Host"))
	}

	dir := c.cfg.GamesDir
	if ctx.Query("jackpots") == "off" {
		dir = c.cfg.GamesDirNoJack
	}

	u := url.URL{Scheme: "https", Host: host, Path: "/" + dir + "/" + ctx.Query("game")}
	q := u.Query()
	if c.cfg.ServiceName != "" {
		q.Set("service", c.cfg.ServiceName)
	}
	if c.cfg.CuracaoOn {
		q.Set("curacao", "1")
	}
	u.RawQuery = q.Encode()

	server.SuccessResponse(ctx, gin.H{"url": u.String()})
}
