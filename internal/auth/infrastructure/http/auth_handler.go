package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsnaruto045-hub/EBONZ/internal/auth/domain"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (domain.UserInfo, error)
	Login(ctx context.Context, username, password string) (string, domain.UserInfo, error)
}

type credentialsRequestBody struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type AuthHandler struct {
	service AuthService
	logger  logging.Logger
}

func NewAuthHandler(service AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body credentialsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	userInfo, err := h.service.Register(c, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &domain.UsernameTakenError{}) {
			c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
			return
		}

		h.logger.Error("failed to register user", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       userInfo.ID,
		"username": userInfo.Username,
		"role":     userInfo.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body credentialsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, userInfo, err := h.service.Login(c, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, &domain.CredentialsMismatchError{}) {
			c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
			return
		}

		h.logger.Error("failed to login user", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"id":       userInfo.ID,
		"username": userInfo.Username,
		"role":     userInfo.Role,
	})
}
