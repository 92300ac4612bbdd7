package controller

import (
	"errors"
	"net/http"

	dto "github.com/vibast-solutions/ms-go-accounts/app/dto/http"
	"github.com/vibast-solutions/ms-go-accounts/app/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email and password are required"})
	}

	user, err := c.authService.Register(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already exists, try logging in"})
		}
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:  user.ID,
		Email:   user.Email,
		Message: "registration successful",
	})
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email and password are required"})
	}

	user, err := c.authService.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "incorrect information"})
		}
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, dto.LoginResponse{
		Email:   user.Email,
		Message: "login successful",
	})
}

func (c *AuthController) ForgotPassword(ctx echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Email == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email is required"})
	}

	result, err := c.authService.RequestPasswordReset(ctx.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no account with that email address exists"})
		}
		if errors.Is(err, service.ErrMailDelivery) {
			return ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "failed to send password reset email"})
		}
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, dto.ForgotPasswordResponse{
		Recipient: result.Recipient,
		Message:   "an e-mail has been sent to " + result.Recipient + " with further instructions",
	})
}

func (c *AuthController) ValidateResetToken(ctx echo.Context) error {
	token := ctx.Param("token")
	if token == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "token is required"})
	}

	email, err := c.authService.ValidateResetToken(ctx.Request().Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "password reset token is invalid or has expired"})
		}
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, dto.ValidateResetTokenResponse{
		Email:   email,
		Message: "reset token is valid",
	})
}

func (c *AuthController) ResetPassword(ctx echo.Context) error {
	token := ctx.Param("token")
	if token == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "token is required"})
	}

	var req dto.ResetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.Password == "" || req.ConfirmPassword == "" {
		return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "password and confirm_password are required"})
	}

	err := c.authService.ResetPassword(ctx.Request().Context(), token, req.Password, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, service.ErrPasswordMismatch) {
			return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "passwords do not match"})
		}
		if errors.Is(err, service.ErrInvalidToken) {
			return ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "password reset token is invalid or has expired"})
		}
		return ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, dto.ResetPasswordResponse{
		Message: "your password has been updated",
	})
}
