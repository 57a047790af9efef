package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/middleware"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ClassController struct {
	classService service.ClassService
}

func NewClassController(classService service.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass godoc
// @Summary (Teacher) Create a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param class body dto.CreateClassRequest true "Name and subject"
// @Success 201 {object} dto.ClassResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)

	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("Name and subject required"))
		return
	}

	resp, err := c.classService.CreateClass(identity.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetMyClasses godoc
// @Summary (Teacher) List own classes
// @Tags Classes
// @Produce json
// @Success 200 {array} dto.ClassResponse
// @Security BearerAuth
// @Router /classes/mine [get]
func (c *ClassController) GetMyClasses(ctx *gin.Context) {
	identity, _ := middleware.CurrentUser(ctx)

	resp, err := c.classService.GetTeacherClasses(identity.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAllClasses godoc
// @Summary (Admin) List all classes with owning teacher
// @Tags Classes
// @Produce json
// @Success 200 {array} dto.ClassWithTeacherResponse
// @Security BearerAuth
// @Router /classes [get]
func (c *ClassController) GetAllClasses(ctx *gin.Context) {
	resp, err := c.classService.GetAllClasses()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
