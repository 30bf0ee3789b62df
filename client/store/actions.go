package store

import "github.com/devconnect/backend/internal/models"

// Action is the closed set of state-update messages. Reducers fold these
// into State; nothing else mutates it.
type Action interface{ isAction() }

// APIFailure is a failed call's status code and message as surfaced by
// the server.
type APIFailure struct {
	Msg    string
	Status int
}

// Auth actions.

type Registered struct{ Token string }
type LoggedIn struct{ Token string }
type UserLoaded struct{ User models.User }
type AuthFailed struct{ Err APIFailure }
type LoggedOut struct{}

// Profile actions.

type ProfileLoaded struct{ Profile models.Profile }
type ProfileUpdated struct{ Profile models.Profile }
type ProfilesLoaded struct{ Profiles []models.Profile }
type ReposLoaded struct{ Repos []models.GithubRepo }
type ProfileFailed struct{ Err APIFailure }
type ProfileCleared struct{}

// Post actions.

type PostsLoaded struct{ Posts []models.Post }
type PostLoaded struct{ Post models.Post }
type PostCreated struct{ Post models.Post }
type PostDeleted struct{ ID string }

// LikesUpdated patches the likes of the post with the given id in place;
// the rest of the list is untouched.
type LikesUpdated struct {
	ID    string
	Likes []models.Like
}

type CommentsUpdated struct {
	ID       string
	Comments []models.Comment
}

type PostFailed struct{ Err APIFailure }

// Alert actions.

type AlertRaised struct{ Alert Alert }
type AlertRemoved struct{ ID string }

func (Registered) isAction()      {}
func (LoggedIn) isAction()        {}
func (UserLoaded) isAction()      {}
func (AuthFailed) isAction()      {}
func (LoggedOut) isAction()       {}
func (ProfileLoaded) isAction()   {}
func (ProfileUpdated) isAction()  {}
func (ProfilesLoaded) isAction()  {}
func (ReposLoaded) isAction()     {}
func (ProfileFailed) isAction()   {}
func (ProfileCleared) isAction()  {}
func (PostsLoaded) isAction()     {}
func (PostLoaded) isAction()      {}
func (PostCreated) isAction()     {}
func (PostDeleted) isAction()     {}
func (LikesUpdated) isAction()    {}
func (CommentsUpdated) isAction() {}
func (PostFailed) isAction()      {}
func (AlertRaised) isAction()     {}
func (AlertRemoved) isAction()    {}
