package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/backend/internal/cache"
)

func TestGithubServiceReposFor(t *testing.T) {
	upstreamCalls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		switch r.URL.Path {
		case "/users/octocat/repos":
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":1,"name":"hello-world","stargazers_count":3}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	mr := miniredis.RunT(t)
	c := cache.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	svc := NewGithubService(upstream.URL, "", c)
	ctx := context.Background()

	repos, err := svc.ReposFor(ctx, "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 3, repos[0].Stargazers)

	// Second lookup is served from the cache.
	_, err = svc.ReposFor(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, 1, upstreamCalls)
}

func TestGithubServiceUnknownUser(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	defer upstream.Close()

	svc := NewGithubService(upstream.URL, "", nil)

	_, err := svc.ReposFor(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoGithubProfile)
}

func TestGithubServiceNoCache(t *testing.T) {
	upstreamCalls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	svc := NewGithubService(upstream.URL, "", nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.ReposFor(ctx, "octocat")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, upstreamCalls)
}
