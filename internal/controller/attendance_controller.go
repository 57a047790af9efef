package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/middleware"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	attendanceService service.AttendanceService
}

func NewAttendanceController(attendanceService service.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance godoc
// @Summary (Student) Mark attendance while the session window is open
// @Tags Attendance
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 201 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorResponse "Attendance window closed"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/{sessionId} [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	if err := c.attendanceService.MarkAttendance(sessionID, identity.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.OKResponse{OK: true})
}

// GetAttendanceCount godoc
// @Summary (Teacher/Admin) Aggregate attendance count for a session
// @Tags Attendance
// @Produce json
// @Param sessionId path int true "Session ID"
// @Success 200 {object} dto.AttendanceCountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/{sessionId}/count [get]
func (c *AttendanceController) GetAttendanceCount(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "sessionId")
	if !ok {
		return
	}

	resp, err := c.attendanceService.GetAttendanceCount(sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
