package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/IsPeeves/lumenixorg/config"
	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserStore is the slice of the user repository the auth handler needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthHandler struct {
	users UserStore
}

func NewAuthHandler(users UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login checks credentials and issues a session token. A wrong email and a
// wrong password answer identically so the endpoint does not reveal which
// accounts exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var in validation.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in, err := validation.Login(in)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), in.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(c, apperr.Unauthorized("invalid credentials"))
			return
		}
		respondError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		respondError(c, apperr.Unauthorized("invalid credentials"))
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": tokenStr,
	})
}
