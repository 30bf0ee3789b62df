package store

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/backend/client"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/services"
)

func newActionsEnv(t *testing.T) (*Actions, *Store) {
	t.Helper()

	users := services.NewUserService()
	profiles := services.NewProfileService()
	posts := services.NewPostService()
	github := services.NewGithubService("http://127.0.0.1:0", "", nil)

	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:           handlers.NewAuthHandler(users, "store-test-secret", time.Hour),
		Profiles:       handlers.NewProfileHandler(profiles, users, posts, github),
		Posts:          handlers.NewPostHandler(posts, users),
		JWTSecret:      "store-test-secret",
		AllowedOrigins: []string{"*"},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	s := NewStore()
	return NewActions(client.New(srv.URL), s), s
}

func TestActionsRegisterLoadsUser(t *testing.T) {
	actions, s := newActionsEnv(t)
	ctx := context.Background()

	require.NoError(t, actions.Register(ctx, models.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	}))

	state := s.State()
	assert.True(t, state.Auth.Authenticated)
	assert.NotEmpty(t, state.Auth.Token)
	require.NotNil(t, state.Auth.User)
	assert.Equal(t, "Ada", state.Auth.User.Name)
}

func TestActionsLoginFailureDispatchesError(t *testing.T) {
	actions, s := newActionsEnv(t)
	ctx := context.Background()

	err := actions.Login(ctx, "ghost@example.com", "secret1")
	require.Error(t, err)

	state := s.State()
	assert.False(t, state.Auth.Authenticated)
	// The failure was also surfaced as a transient alert.
	require.Len(t, state.Alerts, 1)
	assert.Equal(t, "Invalid credentials", state.Alerts[0].Msg)
	assert.Equal(t, "danger", state.Alerts[0].Kind)
}

func TestActionsPostLifecycle(t *testing.T) {
	actions, s := newActionsEnv(t)
	ctx := context.Background()

	require.NoError(t, actions.Register(ctx, models.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	}))

	require.NoError(t, actions.CreatePost(ctx, "hello"))
	require.Len(t, s.State().Posts.Posts, 1)
	postID := s.State().Posts.Posts[0].ID.Hex()

	require.NoError(t, actions.Like(ctx, postID))
	assert.Len(t, s.State().Posts.Posts[0].Likes, 1)

	// A duplicate like fails server-side and lands in the error slice.
	require.Error(t, actions.Like(ctx, postID))
	require.NotNil(t, s.State().Posts.Err)
	assert.Equal(t, 400, s.State().Posts.Err.Status)
	assert.Equal(t, "Post already liked", s.State().Posts.Err.Msg)

	require.NoError(t, actions.Unlike(ctx, postID))
	assert.Empty(t, s.State().Posts.Posts[0].Likes)

	require.NoError(t, actions.DeletePost(ctx, postID))
	assert.Empty(t, s.State().Posts.Posts)
}

func TestActionsProfileFlow(t *testing.T) {
	actions, s := newActionsEnv(t)
	ctx := context.Background()

	require.NoError(t, actions.Register(ctx, models.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	}))

	require.NoError(t, actions.SaveProfile(ctx, models.UpsertProfileRequest{
		Status: "Developer",
		Skills: "js, node",
	}, true))

	state := s.State()
	require.NotNil(t, state.Profile.Profile)
	assert.Equal(t, []string{"js", "node"}, state.Profile.Profile.Skills)

	actions.Logout()
	assert.Nil(t, s.State().Profile.Profile)
	assert.False(t, s.State().Auth.Authenticated)
}
