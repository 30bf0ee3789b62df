package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/services"
)

type AuthHandler struct {
	users         UserStore
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthHandler(users UserStore, jwtSecret string, jwtExpiration time.Duration) *AuthHandler {
	return &AuthHandler{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeValidationErrors(w, errors)
		return
	}

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	user, err := h.users.Register(ctx, &req)
	if err != nil {
		if err == services.ErrEmailExists {
			writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(map[string]string{
				"email": "User already exists",
			}))
			return
		}
		log.Printf("[Register] email=%s error=%v", req.Email, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, user.ID.Hex(), h.jwtExpiration)
	if err != nil {
		log.Printf("[Register] user=%s error=%v", user.ID.Hex(), err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, models.TokenResponse{Token: token})
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeValidationErrors(w, errors)
		return
	}

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	user, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			writeMsg(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		log.Printf("[Login] email=%s error=%v", req.Email, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, user.ID.Hex(), h.jwtExpiration)
	if err != nil {
		log.Printf("[Login] user=%s error=%v", user.ID.Hex(), err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}

// CurrentUser handles GET /api/auth: the caller's user record, password
// excluded, resolved from the verified token.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			writeMsg(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("[CurrentUser] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
