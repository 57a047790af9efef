package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/middleware"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type PollController struct {
	pollService service.PollService
}

func NewPollController(pollService service.PollService) *PollController {
	return &PollController{pollService: pollService}
}

// CreatePoll godoc
// @Summary (Teacher) Create a poll, superseding the session's active poll
// @Tags Polls
// @Accept json
// @Produce json
// @Param poll body dto.CreatePollRequest true "Session, question, 2+ options"
// @Success 201 {object} dto.PollResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /polls [post]
func (c *PollController) CreatePoll(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)

	var req dto.CreatePollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("sessionId, question, 2+ options required"))
		return
	}

	resp, err := c.pollService.CreatePoll(identity.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Respond godoc
// @Summary (Student) Vote on an active poll; re-voting moves the vote
// @Tags Polls
// @Accept json
// @Produce json
// @Param pollId path int true "Poll ID"
// @Param vote body dto.PollRespondRequest true "Option id"
// @Success 201 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorResponse "Poll not active or invalid option"
// @Security BearerAuth
// @Router /polls/{pollId}/respond [post]
func (c *PollController) Respond(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)
	pollID, ok := parseIDParam(ctx, "pollId")
	if !ok {
		return
	}

	var req dto.PollRespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("optionId required"))
		return
	}

	if err := c.pollService.Respond(pollID, identity.UserID, req); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OKResponse{OK: true})
}

// GetResults godoc
// @Summary Poll results with zero-vote options included
// @Tags Polls
// @Produce json
// @Param pollId path int true "Poll ID"
// @Success 200 {object} dto.PollResultsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /polls/{pollId}/results [get]
func (c *PollController) GetResults(ctx *gin.Context) {
	pollID, ok := parseIDParam(ctx, "pollId")
	if !ok {
		return
	}

	resp, err := c.pollService.GetResults(pollID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
