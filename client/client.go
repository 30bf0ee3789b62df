// Package client is a typed Go client for the DevConnect API. Each
// method performs exactly one HTTP call; there is no retry or backoff.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/devconnect/backend/internal/models"
)

// AuthHeader mirrors the server's token header.
const AuthHeader = "x-auth-token"

// APIError carries the server's status code and message for any non-2xx
// response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient injects the transport; used by tests.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// SetToken sets the credential sent on subsequent requests. An empty
// string clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates an account and holds on to the issued token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var out models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &out); err != nil {
		return "", err
	}
	c.SetToken(out.Token)
	return out.Token, nil
}

// Login authenticates and holds on to the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out models.TokenResponse
	body := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth", body, &out); err != nil {
		return "", err
	}
	c.SetToken(out.Token)
	return out.Token, nil
}

// CurrentUser resolves the token holder's user record.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profiles(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveProfile(ctx context.Context, req models.UpsertProfileRequest) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodPost, "/api/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/profile", nil, nil)
}

func (c *Client) AddExperience(ctx context.Context, req models.ExperienceRequest) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile/experience", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveExperience(ctx context.Context, expID string) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodDelete, "/api/profile/experience/"+url.PathEscape(expID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddEducation(ctx context.Context, req models.EducationRequest) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile/education", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveEducation(ctx context.Context, eduID string) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodDelete, "/api/profile/education/"+url.PathEscape(eduID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GithubRepos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	var out []models.GithubRepo
	if err := c.do(ctx, http.MethodGet, "/api/profile/github/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePost(ctx context.Context, text string) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", models.PostRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Post(ctx context.Context, postID string) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(postID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(postID), nil, nil)
}

func (c *Client) LikePost(ctx context.Context, postID string) ([]models.Like, error) {
	var out []models.Like
	if err := c.do(ctx, http.MethodPut, "/api/posts/like/"+url.PathEscape(postID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UnlikePost(ctx context.Context, postID string) ([]models.Like, error) {
	var out []models.Like
	if err := c.do(ctx, http.MethodPut, "/api/posts/unlike/"+url.PathEscape(postID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddComment(ctx context.Context, postID, text string) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.do(ctx, http.MethodPost, "/api/posts/comment/"+url.PathEscape(postID), models.PostRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) ([]models.Comment, error) {
	path := "/api/posts/comment/" + url.PathEscape(postID) + "/" + url.PathEscape(commentID)
	var out []models.Comment
	if err := c.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set(AuthHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: decodeErrorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Msg    string `json:"msg"`
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Msg != "" {
			return body.Msg
		}
		if len(body.Errors) > 0 {
			return body.Errors[0].Msg
		}
	}
	return http.StatusText(resp.StatusCode)
}
