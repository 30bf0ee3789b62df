package store

import "github.com/devconnect/backend/internal/models"

type AuthState struct {
	Token         string
	User          *models.User
	Authenticated bool
	Loading       bool
}

type ProfileState struct {
	Profile  *models.Profile
	Profiles []models.Profile
	Repos    []models.GithubRepo
	Err      *APIFailure
	Loading  bool
}

type PostsState struct {
	Posts   []models.Post
	Post    *models.Post
	Err     *APIFailure
	Loading bool
}

// Alert is a transient user-facing notice; removed automatically after
// its timeout.
type Alert struct {
	ID   string
	Msg  string
	Kind string
}

type State struct {
	Auth    AuthState
	Profile ProfileState
	Posts   PostsState
	Alerts  []Alert
}

// NewState returns the initial state: nothing loaded, everything
// pending.
func NewState() State {
	return State{
		Auth:    AuthState{Loading: true},
		Profile: ProfileState{Loading: true},
		Posts:   PostsState{Loading: true},
		Alerts:  []Alert{},
	}
}
