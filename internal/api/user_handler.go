package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lexiglow/lexiglow-api/internal/api/shared"
	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// RegisterUserRequest is the payload for creating an account.
type RegisterUserRequest struct {
	Email             string `json:"email"               validate:"required,email"`
	Username          string `json:"username"            validate:"required,min=3,max=50"`
	Password          string `json:"password"            validate:"required,min=8,max=72"`
	FirstName         string `json:"first_name"          validate:"omitempty,max=100"`
	LastName          string `json:"last_name"           validate:"omitempty,max=100"`
	NativeLanguageID  string `json:"native_language_id"  validate:"required,uuid"`
	CurrentLanguageID string `json:"current_language_id" validate:"required,uuid"`
}

// LoginRequest is the payload for credential verification.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateProfileRequest is the payload for updating profile fields.
// Credentials are changed through the password endpoint, never here.
type UpdateProfileRequest struct {
	FirstName         string `json:"first_name"          validate:"omitempty,max=100"`
	LastName          string `json:"last_name"           validate:"omitempty,max=100"`
	NativeLanguageID  string `json:"native_language_id"  validate:"required,uuid"`
	CurrentLanguageID string `json:"current_language_id" validate:"required,uuid"`
}

// ChangePasswordRequest is the payload for rotating a password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,min=1"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

// UserResponse is the serialized form of a user. The password hash is
// never included.
type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	NativeLanguageID  string     `json:"native_language_id"`
	CurrentLanguageID string     `json:"current_language_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastActiveAt      *time.Time `json:"last_active_at,omitempty"`
}

// UserHandler handles user account HTTP requests.
type UserHandler struct {
	users     service.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validator.New(),
	}
}

// RegisterUser handles POST /api/v1/users.
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.users.RegisterUser(r.Context(), service.RegisterUserParams{
		Email:             req.Email,
		Username:          req.Username,
		Password:          req.Password,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		NativeLanguageID:  req.NativeLanguageID,
		CurrentLanguageID: req.CurrentLanguageID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /api/v1/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// GetUser handles GET /api/v1/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ListUsers handles GET /api/v1/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := getPagination(w, r)
	if !ok {
		return
	}

	users, err := h.users.ListUsers(r.Context(), skip, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// UpdateProfile handles PUT /api/v1/users/{id}.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), id, service.UpdateProfileParams{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		NativeLanguageID:  req.NativeLanguageID,
		CurrentLanguageID: req.CurrentLanguageID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ChangePassword handles PUT /api/v1/users/{id}/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.users.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.users.DeleteUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		NativeLanguageID:  user.NativeLanguageID,
		CurrentLanguageID: user.CurrentLanguageID,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
		LastActiveAt:      user.LastActiveAt,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, userToResponse(user))
	}
	return out
}
