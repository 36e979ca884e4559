package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fitcall/backend/pkg/httpcontext"
	friendsUC "github.com/fitcall/backend/usecase/friends"
)

type FriendsHandler struct {
	baseHandler
	uc *friendsUC.UseCase
}

func NewFriendsHandler(uc *friendsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *FriendsHandler {
	return &FriendsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List confirmed friends
// @Tags friends
// @Router /api/v1/friends [get]
func (h *FriendsHandler) List(ctx *fasthttp.RequestCtx) {
	userID := queryID(ctx, "user_id")
	if userID == 0 {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.ListFriends(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}
