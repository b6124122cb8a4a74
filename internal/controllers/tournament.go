package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/public-forge/go-logger"

	"github.com/fugaso-go/slot-core/internal/dto/request"
	"github.com/fugaso-go/slot-core/internal/dto/response"
	"github.com/fugaso-go/slot-core/internal/models"
	"github.com/fugaso-go/slot-core/internal/server"
	"github.com/fugaso-go/slot-core/internal/tournament"
	"github.com/fugaso-go/slot-core/internal/validators"
)

// maxTournamentBody bounds an ingested award batch to 1 MiB before any
// deserialization happens.
const maxTournamentBody = 1 << 20

// TournamentController ingests award batches from the tournament server and
// hands them to the fan-out holder.
type TournamentController struct {
	holder *tournament.Holder
}

// NewTournamentController initializes a TournamentController bound to the
// fan-out holder.
func NewTournamentController(holder *tournament.Holder) *TournamentController {
	return &TournamentController{holder: holder}
}

// GetRoute returns the base route path for TournamentController.
func (c *TournamentController) GetRoute() string {
	return "/tournament"
}

// InitRoute mounts the batch ingestion endpoint.
func (c *TournamentController) InitRoute(route *gin.RouterGroup) *gin.RouterGroup {
	route.POST("/handle", c.handle)
	return route
}

// handle ingests one award batch: bound to 1 MiB, validated, converted, and
// processed by the holder; the merged summary is echoed back.
func (c *TournamentController) handle(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxTournamentBody)

	req := request.TournamentResult{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.FromContext(ctx).Error(err)
		server.ErrorBadRequest(ctx, err)
		return
	}
	if errs := validators.Validate(req); errs != nil {
		server.ErrorsBadRequest(ctx, errs)
		return
	}

	awards := make([]models.TournamentAward, 0, len(req.Awards))
	for _, a := range req.Awards {
		awards = append(awards, models.TournamentAward{
			ID:         a.ID,
			Amount:     a.Amount,
			User:       a.User,
			RemoteID:   a.RemoteID,
			Tour:       a.Tour,
			Place:      a.Place,
			Balance:    a.Balance,
			EventID:    a.EventID,
			IP:         a.IP,
			RemoteCode: a.RemoteCode,
		})
	}

	summary, err := c.holder.Handle(ctx.Request.Context(), awards)
	if err != nil {
		server.InternalErrorResponse(ctx, err.Error())
		return
	}

	balanceUser := make(map[string]response.TournamentBalanceUser, len(summary.BalanceUser))
	for remoteID, b := range summary.BalanceUser {
		balanceUser[remoteID] = response.TournamentBalanceUser{
			EventID: b.EventID,
			Balance: b.Balance,
			AwardID: b.AwardID,
		}
	}
	server.SuccessResponse(ctx, response.TournamentHandleResponse{
		Winners:     summary.Winners,
		Gains:       response.TournamentGainsFromModels(summary.Gains),
		BalanceUser: balanceUser,
	})
}
