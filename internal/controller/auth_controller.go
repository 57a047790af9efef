package controller

import (
	"net/http"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Email/password login for teachers and admins
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("Email and password required"))
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateAnonymous godoc
// @Summary Create a new anonymous student identity
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.AnonymousAuthResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/anonymous [post]
func (c *AuthController) CreateAnonymous(ctx *gin.Context) {
	resp, err := c.authService.CreateAnonymous()
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info().Str("code", resp.AnonymousCode).Msg("Anonymous student created")
	ctx.JSON(http.StatusOK, resp)
}

// ResumeAnonymous godoc
// @Summary Sign in with an existing anonymous code
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.AnonymousLoginRequest true "Anonymous code"
// @Success 200 {object} dto.AnonymousAuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/anonymous/login [post]
func (c *AuthController) ResumeAnonymous(ctx *gin.Context) {
	var req dto.AnonymousLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validationf("anonymous code required"))
		return
	}

	resp, err := c.authService.ResumeAnonymous(req.Code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
