package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kasku/kasku_backend/internal/core/ports/services"
	"github.com/kasku/kasku_backend/internal/dto"
)

// goalHandler handles savings goal endpoints.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// registerGoalRoutes registers routes related to savings goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.PUT("/:id", h.adjustGoal)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.Response{data=dto.CreateGoalResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Goal created successfully", dto.CreateGoalResponse{GoalID: goal.GoalID})
}

// listGoals godoc
// @Summary List savings goals
// @Tags goals
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ListGoalsResponse}
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListGoalsResponse{Goals: make([]dto.GoalResponse, 0, len(goals))}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, dto.ToGoalResponse(g))
	}
	respondSuccess(c, http.StatusOK, "", resp)
}

// adjustGoal godoc
// @Summary Adjust a savings goal
// @Description Moves the goal's running total up or down
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param adjustment body dto.AdjustGoalRequest true "Adjustment"
// @Success 200 {object} dto.Response{data=dto.GoalResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) adjustGoal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.AdjustGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	goal, err := h.goalService.AdjustGoal(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Goal updated successfully", gin.H{"goal": dto.ToGoalResponse(*goal)})
}
