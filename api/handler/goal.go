package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fitcall/backend/api/transport"
	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/pkg/httpcontext"
	goalUC "github.com/fitcall/backend/usecase/goal"
)

type GoalHandler struct {
	baseHandler
	uc *goalUC.UseCase
}

func NewGoalHandler(uc *goalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List a user's goals
// @Tags goals
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(ctx *fasthttp.RequestCtx) {
	userID := queryID(ctx, "user_id")
	if userID == 0 {
		h.respondInvalid(ctx, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goals, err := h.uc.ListGoals(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goals)
}

// @Summary Get a goal
// @Tags goals
// @Router /api/v1/goals/{id} [get]
func (h *GoalHandler) Get(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx, "id")
	if id == 0 {
		h.respondInvalid(ctx, "missing goal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.GetGoal(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Create a goal
// @Tags goals
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(ctx *fasthttp.RequestCtx) {
	goal, ok := h.parseGoal(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateGoal(stdCtx, goal)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update a goal
// @Tags goals
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) Update(ctx *fasthttp.RequestCtx) {
	goal, ok := h.parseGoal(ctx)
	if !ok {
		return
	}
	if goal.ID == 0 {
		goal.ID = pathID(ctx, "id")
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateGoal(stdCtx, goal); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Delete a goal
// @Tags goals
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx, "id")
	if id == 0 {
		h.respondInvalid(ctx, "missing goal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteGoal(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List a goal's steps
// @Tags goals
// @Router /api/v1/goals/{id}/steps [get]
func (h *GoalHandler) ListSteps(ctx *fasthttp.RequestCtx) {
	goalID := pathID(ctx, "id")
	if goalID == 0 {
		h.respondInvalid(ctx, "missing goal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	steps, err := h.uc.ListSteps(stdCtx, goalID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, steps)
}

// @Summary Create a step
// @Tags goals
// @Router /api/v1/steps [post]
func (h *GoalHandler) CreateStep(ctx *fasthttp.RequestCtx) {
	step, ok := h.parseStep(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateStep(stdCtx, step)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update a step
// @Tags goals
// @Router /api/v1/steps/{id} [put]
func (h *GoalHandler) UpdateStep(ctx *fasthttp.RequestCtx) {
	step, ok := h.parseStep(ctx)
	if !ok {
		return
	}
	if step.ID == 0 {
		step.ID = pathID(ctx, "id")
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateStep(stdCtx, step); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, step)
}

// @Summary Delete a step
// @Tags goals
// @Router /api/v1/steps/{id} [delete]
func (h *GoalHandler) DeleteStep(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx, "id")
	if id == 0 {
		h.respondInvalid(ctx, "missing step id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteStep(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *GoalHandler) parseGoal(ctx *fasthttp.RequestCtx) (*domain.Goal, bool) {
	var req transport.GoalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &domain.Goal{
		ID:          req.ID,
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}, true
}

func (h *GoalHandler) parseStep(ctx *fasthttp.RequestCtx) (*domain.Step, bool) {
	var req transport.StepRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &domain.Step{
		ID:          req.ID,
		GoalID:      req.GoalID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}, true
}
