package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fitcall/backend/api/transport"
	"github.com/fitcall/backend/pkg/httpcontext"
	challengeUC "github.com/fitcall/backend/usecase/challenge"
)

type ChallengeHandler struct {
	baseHandler
	uc *challengeUC.UseCase
}

func NewChallengeHandler(uc *challengeUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Send a challenge to one or more friends
// @Tags challenges
// @Router /api/v1/challenges/send [post]
func (h *ChallengeHandler) Send(ctx *fasthttp.RequestCtx) {
	var req transport.SendChallengeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.Send(stdCtx, challengeUC.SendInput{
		SenderID:    req.SenderID,
		ReceiverIDs: req.ReceiverIDs,
		CallID:      req.CallID,
		CallName:    req.CallName,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, map[string]string{"message": "challenges sent"})
}

// @Summary Answer a pending challenge
// @Tags challenges
// @Router /api/v1/challenges/respond [post]
func (h *ChallengeHandler) Respond(ctx *fasthttp.RequestCtx) {
	var req transport.RespondChallengeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Respond(stdCtx, req.ChallengeID, req.Accept); err != nil {
		h.respondError(ctx, err)
		return
	}

	message := "challenge rejected"
	if req.Accept {
		message = "challenge accepted"
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"message": message})
}

// @Summary List pending challenges for a receiver
// @Tags challenges
// @Router /api/v1/challenges/received [get]
func (h *ChallengeHandler) Received(ctx *fasthttp.RequestCtx) {
	userID := queryID(ctx, "user_id")
	if userID == 0 {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	notifications, err := h.uc.Received(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, notifications)
}

// @Summary Poll challenge notifications
// @Tags challenges
// @Router /api/v1/challenges/notifications [get]
func (h *ChallengeHandler) Notifications(ctx *fasthttp.RequestCtx) {
	// Same feed as Received; kept as its own route for polling clients.
	h.Received(ctx)
}
