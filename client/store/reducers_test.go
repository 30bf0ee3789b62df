package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devconnect/backend/internal/models"
)

func TestReduceAuth(t *testing.T) {
	s := NewState()

	s = Reduce(s, LoggedIn{Token: "tok"})
	assert.True(t, s.Auth.Authenticated)
	assert.Equal(t, "tok", s.Auth.Token)
	assert.False(t, s.Auth.Loading)

	user := models.User{ID: primitive.NewObjectID(), Name: "Ada"}
	s = Reduce(s, UserLoaded{User: user})
	require.NotNil(t, s.Auth.User)
	assert.Equal(t, "Ada", s.Auth.User.Name)

	s = Reduce(s, LoggedOut{})
	assert.Equal(t, AuthState{}, s.Auth)
	// Logging out also clears the profile slice.
	assert.Equal(t, ProfileState{}, s.Profile)
}

func TestReduceAuthFailureClearsSession(t *testing.T) {
	s := NewState()
	s = Reduce(s, LoggedIn{Token: "tok"})
	s = Reduce(s, AuthFailed{Err: APIFailure{Msg: "Invalid token", Status: 401}})
	assert.False(t, s.Auth.Authenticated)
	assert.Empty(t, s.Auth.Token)
}

func TestReduceProfile(t *testing.T) {
	s := NewState()

	prof := models.Profile{ID: primitive.NewObjectID(), Status: "Developer"}
	s = Reduce(s, ProfileLoaded{Profile: prof})
	require.NotNil(t, s.Profile.Profile)
	assert.Equal(t, "Developer", s.Profile.Profile.Status)
	assert.Nil(t, s.Profile.Err)

	s = Reduce(s, ProfileFailed{Err: APIFailure{Msg: "Server Error", Status: 500}})
	assert.Nil(t, s.Profile.Profile)
	require.NotNil(t, s.Profile.Err)
	assert.Equal(t, 500, s.Profile.Err.Status)

	s = Reduce(s, ProfilesLoaded{Profiles: []models.Profile{prof}})
	assert.Len(t, s.Profile.Profiles, 1)

	s = Reduce(s, ProfileCleared{})
	assert.Equal(t, ProfileState{}, s.Profile)
}

func TestReducePosts(t *testing.T) {
	s := NewState()

	p1 := models.Post{ID: primitive.NewObjectID(), Text: "one"}
	p2 := models.Post{ID: primitive.NewObjectID(), Text: "two"}

	s = Reduce(s, PostsLoaded{Posts: []models.Post{p1}})
	require.Len(t, s.Posts.Posts, 1)

	// New posts land at the head of the list.
	s = Reduce(s, PostCreated{Post: p2})
	require.Len(t, s.Posts.Posts, 2)
	assert.Equal(t, "two", s.Posts.Posts[0].Text)

	s = Reduce(s, PostDeleted{ID: p1.ID.Hex()})
	require.Len(t, s.Posts.Posts, 1)
	assert.Equal(t, "two", s.Posts.Posts[0].Text)
}

func TestReduceLikesPatchesOnlyMatchingPost(t *testing.T) {
	p1 := models.Post{ID: primitive.NewObjectID(), Text: "one"}
	p2 := models.Post{ID: primitive.NewObjectID(), Text: "two"}

	s := Reduce(NewState(), PostsLoaded{Posts: []models.Post{p1, p2}})
	before := s.Posts.Posts

	likes := []models.Like{{ID: primitive.NewObjectID(), User: primitive.NewObjectID()}}
	s = Reduce(s, LikesUpdated{ID: p2.ID.Hex(), Likes: likes})

	assert.Empty(t, s.Posts.Posts[0].Likes)
	assert.Len(t, s.Posts.Posts[1].Likes, 1)

	// The prior slice was not mutated.
	assert.Empty(t, before[1].Likes)
}

func TestReduceCommentsOnOpenPost(t *testing.T) {
	post := models.Post{ID: primitive.NewObjectID(), Text: "discuss"}
	s := Reduce(NewState(), PostLoaded{Post: post})

	comments := []models.Comment{{ID: primitive.NewObjectID(), Text: "nice"}}
	s = Reduce(s, CommentsUpdated{ID: post.ID.Hex(), Comments: comments})
	require.NotNil(t, s.Posts.Post)
	assert.Len(t, s.Posts.Post.Comments, 1)

	// Updates for a different post leave the open one alone.
	s = Reduce(s, CommentsUpdated{ID: primitive.NewObjectID().Hex(), Comments: nil})
	assert.Len(t, s.Posts.Post.Comments, 1)
}

func TestReduceAlerts(t *testing.T) {
	s := NewState()

	s = Reduce(s, AlertRaised{Alert: Alert{ID: "1", Msg: "Post Created", Kind: "success"}})
	s = Reduce(s, AlertRaised{Alert: Alert{ID: "2", Msg: "Profile Updated", Kind: "success"}})
	require.Len(t, s.Alerts, 2)

	s = Reduce(s, AlertRemoved{ID: "1"})
	require.Len(t, s.Alerts, 1)
	assert.Equal(t, "2", s.Alerts[0].ID)
}
