package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fitcall/backend/pkg/httpcontext"
	statsUC "github.com/fitcall/backend/usecase/stats"
)

type StatsHandler struct {
	baseHandler
	uc *statsUC.UseCase
}

func NewStatsHandler(uc *statsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Per-user completion stats
// @Tags stats
// @Router /api/v1/stats/user [get]
func (h *StatsHandler) UserStats(ctx *fasthttp.RequestCtx) {
	username := string(ctx.QueryArgs().Peek("username"))
	if username == "" {
		h.respondInvalid(ctx, "missing username")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.UserStats(stdCtx, username)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Global leaderboard and completion totals
// @Tags stats
// @Router /api/v1/stats/global [get]
func (h *StatsHandler) GlobalStats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.GlobalStats(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Age-cohort comparison stats
// @Tags stats
// @Router /api/v1/stats/comparison [get]
func (h *StatsHandler) ComparisonStats(ctx *fasthttp.RequestCtx) {
	username := string(ctx.QueryArgs().Peek("username"))
	if username == "" {
		h.respondInvalid(ctx, "missing username")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.ComparisonStats(stdCtx, username)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}
