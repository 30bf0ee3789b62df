package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/services"
)

const testSecret = "test-secret-key"

type fakeRepoFinder struct {
	repos []models.GithubRepo
	err   error
}

func (f *fakeRepoFinder) ReposFor(ctx context.Context, username string) ([]models.GithubRepo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.repos, nil
}

type testEnv struct {
	router chi.Router
	github *fakeRepoFinder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := services.NewUserService()
	profiles := services.NewProfileService()
	posts := services.NewPostService()
	github := &fakeRepoFinder{}

	router := NewRouter(RouterDeps{
		Auth:           NewAuthHandler(users, testSecret, time.Hour),
		Profiles:       NewProfileHandler(profiles, users, posts, github),
		Posts:          NewPostHandler(posts, users),
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"*"},
	})

	return &testEnv{router: router, github: github}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthHeader, token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates a user and returns the issued token.
func (e *testEnv) register(t *testing.T, name, email string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/users", "", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
