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

type PostHandler struct {
	posts PostStore
	users UserStore
}

func NewPostHandler(posts PostStore, users UserStore) *PostHandler {
	return &PostHandler{posts: posts, users: users}
}

// CreatePost handles POST /api/posts. The author's name and avatar are
// snapshotted onto the post at creation time.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.PostRequest
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

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[CreatePost] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	post, err := h.posts.Create(ctx, &models.Post{
		User:   user.ID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
	if err != nil {
		log.Printf("[CreatePost] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// ListPosts handles GET /api/posts, newest first.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	posts, err := h.posts.List(ctx)
	if err != nil {
		log.Printf("[ListPosts] error=%v", err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /api/posts/{post_id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	post, err := h.posts.GetByID(ctx, postID)
	if err != nil {
		h.writePostError(w, "GetPost", postID, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/{post_id}; owner only.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	if err := h.posts.Delete(ctx, postID, userID); err != nil {
		h.writePostError(w, "DeletePost", postID, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Msg: "Post removed"})
}

// LikePost handles PUT /api/posts/like/{post_id}.
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	likes, err := h.posts.Like(ctx, postID, userID)
	if err != nil {
		h.writePostError(w, "LikePost", postID, err)
		return
	}

	writeJSON(w, http.StatusOK, likes)
}

// UnlikePost handles PUT /api/posts/unlike/{post_id}.
func (h *PostHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	likes, err := h.posts.Unlike(ctx, postID, userID)
	if err != nil {
		h.writePostError(w, "UnlikePost", postID, err)
		return
	}

	writeJSON(w, http.StatusOK, likes)
}

// AddComment handles POST /api/posts/comment/{post_id}.
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	var req models.PostRequest
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

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[AddComment] user=%s error=%v", userID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
		return
	}

	comments, err := h.posts.AddComment(ctx, postID, models.Comment{
		User:   user.ID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	})
	if err != nil {
		h.writePostError(w, "AddComment", postID, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/posts/comment/{post_id}/{comment_id};
// comment author only.
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")
	commentID := chi.URLParam(r, "comment_id")

	ctx, cancel := contextWithTimeout(r.Context(), services.DefaultTimeout())
	defer cancel()

	comments, err := h.posts.RemoveComment(ctx, postID, commentID, userID)
	if err != nil {
		h.writePostError(w, "DeleteComment", postID, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *PostHandler) writePostError(w http.ResponseWriter, op, postID string, err error) {
	switch err {
	case services.ErrPostNotFound:
		writeMsg(w, http.StatusNotFound, "Post not found")
	case services.ErrCommentNotFound:
		writeMsg(w, http.StatusNotFound, "Comment does not exist")
	case services.ErrNotAuthorized:
		writeMsg(w, http.StatusUnauthorized, "User not authorized")
	case services.ErrAlreadyLiked:
		writeMsg(w, http.StatusBadRequest, "Post already liked")
	case services.ErrNotLiked:
		writeMsg(w, http.StatusBadRequest, "Post has not been liked")
	default:
		log.Printf("[%s] post=%s error=%v", op, postID, err)
		writeMsg(w, http.StatusInternalServerError, "Server Error")
	}
}
