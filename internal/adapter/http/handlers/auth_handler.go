package handlers

import (
	"errors"
	"net/http"

	request "autonova/internal/adapter/http/dto/request"
	response "autonova/internal/adapter/http/dto/response"
	"autonova/internal/domain/entities"
	"autonova/internal/usecase"
	"autonova/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid authentication payload", http.StatusBadRequest)
	errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	errInactiveUser       = pkg.NewDomainErrorSimple("INACTIVE_USER", "User account is inactive", http.StatusForbidden)
	errUsernameTaken      = pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already taken", http.StatusConflict)
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), usecase.RegisterInput{
		Username:  payload.Username,
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Phone:     payload.Phone,
		Role:      entities.Role(payload.Role),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			c.JSON(errUsernameTaken.HTTPStatus, errUsernameTaken.ToHTTPError())
			return
		}
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		case errors.Is(err, usecase.ErrInactiveUser):
			c.JSON(errInactiveUser.HTTPStatus, errInactiveUser.ToHTTPError())
		default:
			appErr := mapEstimateError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.FromUser(user),
	})
}
