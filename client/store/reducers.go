package store

import "github.com/devconnect/backend/internal/models"

// Reduce folds one action into the state. It is pure: slices are
// replaced, never mutated in place.
func Reduce(s State, a Action) State {
	s.Auth = reduceAuth(s.Auth, a)
	s.Profile = reduceProfile(s.Profile, a)
	s.Posts = reducePosts(s.Posts, a)
	s.Alerts = reduceAlerts(s.Alerts, a)
	return s
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case Registered:
		s.Token = a.Token
		s.Authenticated = true
		s.Loading = false
	case LoggedIn:
		s.Token = a.Token
		s.Authenticated = true
		s.Loading = false
	case UserLoaded:
		user := a.User
		s.User = &user
		s.Authenticated = true
		s.Loading = false
	case AuthFailed, LoggedOut:
		s = AuthState{}
	}
	return s
}

func reduceProfile(s ProfileState, a Action) ProfileState {
	switch a := a.(type) {
	case ProfileLoaded:
		prof := a.Profile
		s.Profile = &prof
		s.Err = nil
		s.Loading = false
	case ProfileUpdated:
		prof := a.Profile
		s.Profile = &prof
		s.Err = nil
		s.Loading = false
	case ProfilesLoaded:
		s.Profiles = a.Profiles
		s.Err = nil
		s.Loading = false
	case ReposLoaded:
		s.Repos = a.Repos
	case ProfileFailed:
		err := a.Err
		s.Err = &err
		s.Profile = nil
		s.Loading = false
	case ProfileCleared, LoggedOut:
		s = ProfileState{}
	}
	return s
}

func reducePosts(s PostsState, a Action) PostsState {
	switch a := a.(type) {
	case PostsLoaded:
		s.Posts = a.Posts
		s.Err = nil
		s.Loading = false
	case PostLoaded:
		post := a.Post
		s.Post = &post
		s.Err = nil
		s.Loading = false
	case PostCreated:
		s.Posts = append([]models.Post{a.Post}, s.Posts...)
		s.Err = nil
		s.Loading = false
	case PostDeleted:
		kept := make([]models.Post, 0, len(s.Posts))
		for _, p := range s.Posts {
			if p.ID.Hex() != a.ID {
				kept = append(kept, p)
			}
		}
		s.Posts = kept
	case LikesUpdated:
		posts := make([]models.Post, len(s.Posts))
		copy(posts, s.Posts)
		for i := range posts {
			if posts[i].ID.Hex() == a.ID {
				posts[i].Likes = a.Likes
			}
		}
		s.Posts = posts
		if s.Post != nil && s.Post.ID.Hex() == a.ID {
			post := *s.Post
			post.Likes = a.Likes
			s.Post = &post
		}
	case CommentsUpdated:
		if s.Post != nil && s.Post.ID.Hex() == a.ID {
			post := *s.Post
			post.Comments = a.Comments
			s.Post = &post
		}
	case PostFailed:
		err := a.Err
		s.Err = &err
		s.Loading = false
	}
	return s
}

func reduceAlerts(alerts []Alert, a Action) []Alert {
	switch a := a.(type) {
	case AlertRaised:
		return append(append([]Alert(nil), alerts...), a.Alert)
	case AlertRemoved:
		kept := make([]Alert, 0, len(alerts))
		for _, al := range alerts {
			if al.ID != a.ID {
				kept = append(kept, al)
			}
		}
		return kept
	}
	return alerts
}
