// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pokewiki/pokewiki/internal/middleware"
	teamModel "github.com/pokewiki/pokewiki/internal/team/model"
	"github.com/pokewiki/pokewiki/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/teams: all teams of the logged-in user,
// newest-created first.
func (h *Handler) List(c *gin.Context) {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		notAuthorizedResponse(c)
		return
	}

	teams, err := h.service.List(c.Request.Context(), callerID)
	if err != nil {
		h.logger.Errorw("error listing teams", "caller_id", callerID, "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// Create handles POST /api/teams: a new empty team owned by the caller.
func (h *Handler) Create(c *gin.Context) {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		notAuthorizedResponse(c)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msgResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.service.Create(c.Request.Context(), callerID, req.Name)
	if err != nil {
		h.logger.Errorw("error creating team", "caller_id", callerID, "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /api/teams/:id.
func (h *Handler) Delete(c *gin.Context) {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		notAuthorizedResponse(c)
		return
	}

	teamID := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), callerID, teamID); err != nil {
		h.respondDomainError(c, callerID, teamID, err)
		return
	}

	c.JSON(http.StatusOK, teamModel.DeleteResponse{Msg: "Team removed"})
}

// ReplaceMembers handles PUT /api/teams/:id: the body carries the full
// desired roster and the stored members array is replaced wholesale.
func (h *Handler) ReplaceMembers(c *gin.Context) {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		notAuthorizedResponse(c)
		return
	}

	var req teamModel.ReplaceMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msgResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	teamID := c.Param("id")
	team, err := h.service.ReplaceMembers(c.Request.Context(), callerID, teamID, req.Members)
	if err != nil {
		if errors.Is(err, teamModel.ErrRosterFull) {
			msgResponse(c, http.StatusBadRequest,
				fmt.Sprintf("a team is limited to %d members", teamModel.MaxMembers))
			return
		}
		h.respondDomainError(c, callerID, teamID, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *Handler) respondDomainError(c *gin.Context, callerID, teamID string, err error) {
	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c)
	case errors.Is(err, teamModel.ErrNotTeamOwner):
		notAuthorizedResponse(c)
	default:
		h.logger.Errorw("team operation failed", "caller_id", callerID, "team_id", teamID, "error", err)
		serverErrorResponse(c)
	}
}
