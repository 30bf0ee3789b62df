package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/backend/internal/models"
)

// ProfileService is an in-memory drop-in for MongoProfileService.
type ProfileService struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile // keyed by user hex id
}

func NewProfileService() *ProfileService {
	return &ProfileService{profiles: make(map[string]*models.Profile)}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(userID)
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *ProfileService) Upsert(ctx context.Context, userID string, req *models.UpsertProfileRequest) (*models.Profile, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prof, exists := s.profiles[userID]
	if !exists {
		prof = &models.Profile{
			ID:         primitive.NewObjectID(),
			User:       uid,
			Experience: []models.Experience{},
			Education:  []models.Education{},
			Date:       time.Now(),
		}
		s.profiles[userID] = prof
	}

	prof.Status = req.Status
	prof.Skills = models.SplitSkills(req.Skills)
	if req.Company != nil {
		prof.Company = *req.Company
	}
	if req.Website != nil {
		prof.Website = *req.Website
	}
	if req.Location != nil {
		prof.Location = *req.Location
	}
	if req.Bio != nil {
		prof.Bio = *req.Bio
	}
	if req.GithubUsername != nil {
		prof.GithubUsername = *req.GithubUsername
	}
	if req.YouTube != nil {
		prof.Social.YouTube = *req.YouTube
	}
	if req.Twitter != nil {
		prof.Social.Twitter = *req.Twitter
	}
	if req.Facebook != nil {
		prof.Social.Facebook = *req.Facebook
	}
	if req.LinkedIn != nil {
		prof.Social.LinkedIn = *req.LinkedIn
	}
	if req.Instagram != nil {
		prof.Social.Instagram = *req.Instagram
	}

	out := *prof
	return &out, nil
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	prof.Experience = append([]models.Experience{exp}, prof.Experience...)
	out := *prof
	return &out, nil
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	prof.Education = append([]models.Education{edu}, prof.Education...)
	out := *prof
	return &out, nil
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	kept := prof.Experience[:0]
	for _, e := range prof.Experience {
		if e.ID.Hex() != expID {
			kept = append(kept, e)
		}
	}
	prof.Experience = kept
	out := *prof
	return &out, nil
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	kept := prof.Education[:0]
	for _, e := range prof.Education {
		if e.ID.Hex() != eduID {
			kept = append(kept, e)
		}
	}
	prof.Education = kept
	out := *prof
	return &out, nil
}

func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

func (s *ProfileService) get(userID string) (*models.Profile, error) {
	prof, exists := s.profiles[userID]
	if !exists {
		return nil, ErrProfileNotFound
	}
	return prof, nil
}
