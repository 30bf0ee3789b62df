package handlers

import (
	"context"

	"github.com/devconnect/backend/internal/models"
)

// Store interfaces are satisfied by both the Mongo services and their
// in-memory counterparts in internal/services.

type UserStore interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, userID string, req *models.UpsertProfileRequest) (*models.Profile, error)
	AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error)
	AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error)
	Delete(ctx context.Context, userID string) error
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, postID, userID string) error
	Like(ctx context.Context, postID, userID string) ([]models.Like, error)
	Unlike(ctx context.Context, postID, userID string) ([]models.Like, error)
	AddComment(ctx context.Context, postID string, comment models.Comment) ([]models.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type RepoFinder interface {
	ReposFor(ctx context.Context, username string) ([]models.GithubRepo, error)
}
