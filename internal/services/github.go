package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devconnect/backend/internal/cache"
	"github.com/devconnect/backend/internal/models"
)

const githubRepoTTL = 10 * time.Minute

// GithubService proxies the public repos lookup to the GitHub API, with a
// cache-aside layer so repeated profile views don't burn the rate limit.
type GithubService struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Cache      *cache.Cache
}

func NewGithubService(baseURL, token string, c *cache.Cache) *GithubService {
	return &GithubService{
		BaseURL: baseURL,
		Token:   token,
		Cache:   c,
		HTTPClient: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

// ReposFor returns the user's five most recent public repos. An upstream
// non-200 (unknown username included) maps to ErrNoGithubProfile.
func (s *GithubService) ReposFor(ctx context.Context, username string) ([]models.GithubRepo, error) {
	repos := make([]models.GithubRepo, 0)
	key := "github:repos:" + username

	err := s.Cache.CacheAside(ctx, key, &repos, githubRepoTTL, func() error {
		fetched, err := s.fetch(ctx, username)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}

func (s *GithubService) fetch(ctx context.Context, username string) ([]models.GithubRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		s.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect")
	if s.Token != "" {
		req.Header.Set("Authorization", "token "+s.Token)
	}

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 8 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoGithubProfile
	}

	var repos []models.GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, err
	}
	return repos, nil
}
