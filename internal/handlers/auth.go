package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rentx-lk/rentx-api/internal/auth"
	"github.com/rentx-lk/rentx-api/internal/db"
	"github.com/rentx-lk/rentx-api/internal/httpjson"
	"github.com/rentx-lk/rentx-api/internal/middleware"
	"github.com/rentx-lk/rentx-api/internal/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService    *auth.Service
	userCollection db.UserCollection
	validate       *validator.Validate
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, userCollection db.UserCollection) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		userCollection: userCollection,
		validate:       newValidator(),
	}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if !decodeBody(w, r, h.validate, &loginReq) {
		return
	}

	user, err := h.userCollection.FindUserByEmail(r.Context(), loginReq.Email)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.WithError(err).Error("Failed to look up user")
			httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to look up user")
			return
		}
		httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeInvalidCredentials, "invalid email or password")
		return
	}

	switch err := h.authService.Verify(user, loginReq.Password); {
	case errors.Is(err, auth.ErrUserInactive):
		httpjson.WriteError(w, http.StatusForbidden, httpjson.CodeAccountInactive, "account is deactivated")
		return
	case err != nil:
		httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeInvalidCredentials, "invalid email or password")
		return
	}

	h.issueTokens(w, r, user, http.StatusOK)
}

// Register handles user registration. New accounts are always customers.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq models.RegisterRequest
	if !decodeBody(w, r, h.validate, &registerReq) {
		return
	}

	passwordHash, err := h.authService.HashPassword(registerReq.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeValidationFailed, err.Error())
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to create account")
		return
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     registerReq.FullName,
		Email:        registerReq.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
	}

	if err := h.userCollection.InsertUser(r.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			httpjson.WriteError(w, http.StatusConflict, httpjson.CodeEmailTaken, "an account with this email already exists")
			return
		}
		log.WithError(err).Error("Failed to insert user")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to create account")
		return
	}

	created, err := h.userCollection.FindUserByID(r.Context(), user.ID.Hex())
	if err != nil {
		log.WithError(err).Error("Failed to reload new user")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to create account")
		return
	}

	log.WithFields(log.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("User registered")
	h.issueTokens(w, r, created, http.StatusCreated)
}

func (h *AuthHandler) issueTokens(w http.ResponseWriter, r *http.Request, user *models.User, status int) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to generate token")
		return
	}

	refreshToken, err := h.authService.GenerateRefreshToken()
	if err != nil {
		log.WithError(err).Error("Failed to generate refresh token")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to generate token")
		return
	}

	if err := h.userCollection.UpdateLastLogin(r.Context(), user.ID.Hex()); err != nil {
		log.WithError(err).WithField("user_id", user.ID.Hex()).Warn("Failed to update last login")
	}

	httpjson.WriteJSON(w, status, models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
	})
}

// GetProfile returns the current user's profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeUnauthorized, "user context not found")
		return
	}

	user, err := h.userCollection.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		httpjson.WriteError(w, http.StatusNotFound, httpjson.CodeNotFound, "user not found")
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, user)
}

// ChangePassword changes the current user's password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeUnauthorized, "user context not found")
		return
	}

	var passwordReq models.ChangePasswordRequest
	if !decodeBody(w, r, h.validate, &passwordReq) {
		return
	}

	user, err := h.userCollection.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		httpjson.WriteError(w, http.StatusNotFound, httpjson.CodeNotFound, "user not found")
		return
	}

	if !h.authService.CheckPassword(passwordReq.CurrentPassword, user.PasswordHash) {
		httpjson.WriteError(w, http.StatusUnauthorized, httpjson.CodeInvalidCredentials, "current password is incorrect")
		return
	}

	newPasswordHash, err := h.authService.HashPassword(passwordReq.NewPassword)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		httpjson.WriteError(w, http.StatusBadRequest, httpjson.CodeValidationFailed, err.Error())
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to hash password")
		return
	}

	if err := h.userCollection.SetPassword(r.Context(), claims.UserID, newPasswordHash); err != nil {
		log.WithError(err).WithField("user_id", claims.UserID).Error("Failed to update password")
		httpjson.WriteError(w, http.StatusInternalServerError, httpjson.CodeInternalError, "failed to update password")
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

// PasswordStrength scores a candidate password for the sign-up form.
func (h *AuthHandler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeBody(w, r, h.validate, &req) {
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, auth.PasswordStrength(req.Password))
}
