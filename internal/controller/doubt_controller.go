package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/middleware"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type DoubtController struct {
	doubtService service.DoubtService
}

func NewDoubtController(doubtService service.DoubtService) *DoubtController {
	return &DoubtController{doubtService: doubtService}
}

// SubmitDoubt godoc
// @Summary (Student) Post a doubt anonymously
// @Tags Doubts
// @Accept json
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param doubt body dto.SubmitDoubtRequest true "Doubt content"
// @Success 201 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /doubts/{sessionId} [post]
func (c *DoubtController) SubmitDoubt(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	var req dto.SubmitDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("content required"))
		return
	}

	if err := c.doubtService.SubmitDoubt(sessionID, identity.UserID, req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OKResponse{OK: true})
}

// GetSessionDoubts godoc
// @Summary (Teacher/Admin) List a session's doubts, oldest first, anonymous
// @Tags Doubts
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 200 {array} dto.DoubtResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /doubts/{sessionId} [get]
func (c *DoubtController) GetSessionDoubts(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	resp, err := c.doubtService.GetSessionDoubts(sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
