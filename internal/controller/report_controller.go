package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetTeacherReports godoc
// @Summary (Admin) Teacher performance report with bonus suggestions
// @Tags Reports
// @Produce json
// @Success 200 {array} dto.TeacherReport
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/teachers [get]
func (c *ReportController) GetTeacherReports(ctx *gin.Context) {
	resp, err := c.reportService.GetTeacherReports()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
