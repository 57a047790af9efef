package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// CreateSession godoc
// @Summary (Teacher) Create a class session with a 5-minute attendance window
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Class id and optional start time"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("classId required"))
		return
	}

	resp, err := c.sessionService.CreateSession(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetClassSessions godoc
// @Summary (Teacher/Admin) List sessions of a class
// @Tags Sessions
// @Produce json
// @Param classId path int true "Class ID"
// @Success 200 {array} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sessions/by-class/{classId} [get]
func (c *SessionController) GetClassSessions(ctx *gin.Context) {
	classID, ok := parseIDParam(ctx, "classId")
	if !ok {
		return
	}

	resp, err := c.sessionService.GetClassSessions(classID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
