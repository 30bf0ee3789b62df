package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/services"
)

type ProfileHandler struct {
	profiles ProfileStore
	users    UserStore
	posts    PostStore
	github   RepoFinder
}

func NewProfileHandler(profiles ProfileStore, users UserStore, posts PostStore, github RepoFinder) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, users: users, posts: posts, github: github}
}

// GetMyProfile handles GET /api/profile/me.
func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	prof, err := h.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			writeMsg(w, http.StatusNotFound, "There is no profile for this user")
			return
		}
		log.Printf("[GetMyProfile] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// UpsertProfile handles POST /api/profile: create on first submission,
// partial update after that.
func (h *ProfileHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.UpsertProfileRequest
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

	prof, err := h.profiles.Upsert(ctx, userID, &req)
	if err != nil {
		log.Printf("[UpsertProfile] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// ListProfiles handles GET /api/profile (public).
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	profiles, err := h.profiles.List(ctx)
	if err != nil {
		log.Printf("[ListProfiles] error=%v", err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// GetProfileByUser handles GET /api/profile/user/{user_id} (public). A
// malformed id behaves like a missing profile, never a server error.
func (h *ProfileHandler) GetProfileByUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "user_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	prof, err := h.profiles.GetByUserID(ctx, targetID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			writeMsg(w, http.StatusNotFound, "Profile not found")
			return
		}
		log.Printf("[GetProfileByUser] user=%s error=%v", targetID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// DeleteAccount handles DELETE /api/profile: removes the caller's
// profile, posts and user record.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	// Order matters a bit to avoid leaving dangling references.
	if err := h.posts.DeleteByUser(ctx, userID); err != nil {
		log.Printf("[DeleteAccount] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if err := h.profiles.Delete(ctx, userID); err != nil {
		log.Printf("[DeleteAccount] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if err := h.users.Delete(ctx, userID); err != nil {
		log.Printf("[DeleteAccount] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Msg: "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.ExperienceRequest
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

	prof, err := h.profiles.AddExperience(ctx, userID, req.Entry())
	if err != nil {
		h.writeProfileError(w, "AddExperience", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// RemoveExperience handles DELETE /api/profile/experience/{exp_id}.
// Removing an id no longer on the list still succeeds.
func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	expID := chi.URLParam(r, "exp_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	prof, err := h.profiles.RemoveExperience(ctx, userID, expID)
	if err != nil {
		h.writeProfileError(w, "RemoveExperience", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.EducationRequest
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

	prof, err := h.profiles.AddEducation(ctx, userID, req.Entry())
	if err != nil {
		h.writeProfileError(w, "AddEducation", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// RemoveEducation handles DELETE /api/profile/education/{edu_id}.
func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	eduID := chi.URLParam(r, "edu_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	prof, err := h.profiles.RemoveEducation(ctx, userID, eduID)
	if err != nil {
		h.writeProfileError(w, "RemoveEducation", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, prof)
}

// GithubRepos handles GET /api/profile/github/{username} (public).
func (h *ProfileHandler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	repos, err := h.github.ReposFor(ctx, username)
	if err != nil {
		if err == services.ErrNoGithubProfile {
			writeMsg(w, http.StatusNotFound, "No Github profile found")
			return
		}
		log.Printf("[GithubRepos] username=%s error=%v", username, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, repos)
}

func (h *ProfileHandler) writeProfileError(w http.ResponseWriter, op, userID string, err error) {
	if err == services.ErrProfileNotFound {
		writeMsg(w, http.StatusNotFound, "There is no profile for this user")
		return
	}
	log.Printf("[%s] user=%s error=%v", op, userID, err)
	writeMsg(w, http.StatusInternalServerError, "Server Error")
}
