package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/middleware"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedbackService service.FeedbackService
}

func NewFeedbackController(feedbackService service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary (Student) Submit or overwrite anonymous session feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param sessionId path int true "Session ID"
// @Param feedback body dto.SubmitFeedbackRequest true "Rating 1-5 and optional comment"
// @Success 201 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorResponse "rating must be integer 1-5"
// @Security BearerAuth
// @Router /feedback/{sessionId} [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("rating must be integer 1-5"))
		return
	}

	if err := c.feedbackService.SubmitFeedback(sessionID, identity.UserID, req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OKResponse{OK: true})
}

// GetAggregate godoc
// @Summary (Admin) Mean rating and count for a session
// @Tags Feedback
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 200 {object} dto.FeedbackAggregateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /feedback/session/{sessionId}/aggregate [get]
func (c *FeedbackController) GetAggregate(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	resp, err := c.feedbackService.GetAggregate(sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetComments godoc
// @Summary (Admin) Anonymous feedback comments, newest first
// @Tags Feedback
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 200 {array} dto.FeedbackCommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /feedback/session/{sessionId}/comments [get]
func (c *FeedbackController) GetComments(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	resp, err := c.feedbackService.GetComments(sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
