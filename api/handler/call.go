package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fitcall/backend/api/transport"
	"github.com/fitcall/backend/pkg/httpcontext"
	"github.com/fitcall/backend/repository"
	callUC "github.com/fitcall/backend/usecase/call"
)

type CallHandler struct {
	baseHandler
	uc *callUC.UseCase
}

func NewCallHandler(uc *callUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CallHandler {
	return &CallHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List a user's calls
// @Tags calls
// @Router /api/v1/calls [get]
func (h *CallHandler) List(ctx *fasthttp.RequestCtx) {
	userID := queryID(ctx, "user_id")
	if userID == 0 {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	filter := repository.CallFilter{
		UserID: userID,
		Status: string(ctx.QueryArgs().Peek("status")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	calls, err := h.uc.ListCalls(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, calls)
}

// @Summary Update a call's status
// @Tags calls
// @Router /api/v1/calls/{id}/status [put]
func (h *CallHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx, "id")
	if id == 0 {
		h.respondInvalid(ctx, "missing call id")
		return
	}

	var req transport.CallStatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateStatus(stdCtx, id, req.Status); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"message": "call updated"})
}
