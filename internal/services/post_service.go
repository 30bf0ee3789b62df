package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/backend/internal/models"
)

// PostService is an in-memory drop-in for MongoPostService.
type PostService struct {
	mu    sync.RWMutex
	posts map[string]*models.Post // keyed by hex id
}

func NewPostService() *PostService {
	return &PostService{posts: make(map[string]*models.Post)}
}

func (s *PostService) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = primitive.NewObjectID()
	post.Date = time.Now()
	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	stored := *post
	s.posts[post.ID.Hex()] = &stored
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, err := s.get(id)
	if err != nil {
		return nil, err
	}
	out := *post
	return &out, nil
}

func (s *PostService) Delete(ctx context.Context, postID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return err
	}
	if post.User.Hex() != userID {
		return ErrNotAuthorized
	}
	delete(s.posts, postID)
	return nil
}

func (s *PostService) Like(ctx context.Context, postID, userID string) ([]models.Like, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(uid) {
		return nil, ErrAlreadyLiked
	}

	like := models.Like{ID: primitive.NewObjectID(), User: uid}
	post.Likes = append([]models.Like{like}, post.Likes...)
	return append([]models.Like(nil), post.Likes...), nil
}

func (s *PostService) Unlike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return nil, err
	}
	if !post.LikedBy(uid) {
		return nil, ErrNotLiked
	}

	kept := post.Likes[:0]
	for _, l := range post.Likes {
		if l.User != uid {
			kept = append(kept, l)
		}
	}
	post.Likes = kept
	return append([]models.Like(nil), post.Likes...), nil
}

func (s *PostService) AddComment(ctx context.Context, postID string, comment models.Comment) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return nil, err
	}

	comment.ID = primitive.NewObjectID()
	comment.Date = time.Now()
	post.Comments = append([]models.Comment{comment}, post.Comments...)
	return append([]models.Comment(nil), post.Comments...), nil
}

func (s *PostService) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.get(postID)
	if err != nil {
		return nil, err
	}

	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}
	comment := post.CommentByID(cid)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.User.Hex() != userID {
		return nil, ErrNotAuthorized
	}

	kept := post.Comments[:0]
	for _, c := range post.Comments {
		if c.ID != cid {
			kept = append(kept, c)
		}
	}
	post.Comments = kept
	return append([]models.Comment(nil), post.Comments...), nil
}

func (s *PostService) DeleteByUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.posts {
		if p.User.Hex() == userID {
			delete(s.posts, id)
		}
	}
	return nil
}

func (s *PostService) get(id string) (*models.Post, error) {
	post, exists := s.posts[id]
	if !exists {
		return nil, ErrPostNotFound
	}
	return post, nil
}
