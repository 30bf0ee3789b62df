package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/backend/internal/models"
)

// UserService is an in-memory drop-in for MongoUserService, used by tests
// and local development without a database.
type UserService struct {
	mu      sync.RWMutex
	users   map[string]*models.User // keyed by hex id
	byEmail map[string]string       // email -> hex id
}

func NewUserService() *UserService {
	return &UserService{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[req.Email]; exists {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   GravatarURL(req.Email),
		Date:     time.Now(),
	}

	s.users[user.ID.Hex()] = user
	s.byEmail[user.Email] = user.ID.Hex()
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byEmail[email]
	if !exists {
		return nil, ErrInvalidCredentials
	}

	user := s.users[id]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}

	out := *user
	out.Password = ""
	return &out, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, exists := s.users[id]; exists {
		delete(s.byEmail, user.Email)
		delete(s.users, id)
	}
	return nil
}
