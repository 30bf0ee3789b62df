package store

import (
	"context"
	"errors"

	"github.com/devconnect/backend/client"
	"github.com/devconnect/backend/internal/models"
)

// Actions are the store's action creators: each performs one API call
// and dispatches the typed outcome. Failures carry the server's status
// and message; there is no retry.
type Actions struct {
	api        *client.Client
	store      *Store
	alertAfter func(msg, kind string)
}

func NewActions(api *client.Client, s *Store) *Actions {
	a := &Actions{api: api, store: s}
	a.alertAfter = func(msg, kind string) {
		s.RaiseAlert(msg, kind, DefaultAlertTimeout)
	}
	return a
}

func failure(err error) APIFailure {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return APIFailure{Msg: apiErr.Message, Status: apiErr.Status}
	}
	return APIFailure{Msg: err.Error()}
}

func (a *Actions) Register(ctx context.Context, req models.RegisterRequest) error {
	token, err := a.api.Register(ctx, req)
	if err != nil {
		a.store.Dispatch(AuthFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(Registered{Token: token})
	return a.loadUser(ctx)
}

func (a *Actions) Login(ctx context.Context, email, password string) error {
	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.store.Dispatch(AuthFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(LoggedIn{Token: token})
	return a.loadUser(ctx)
}

// LoadUser resolves the held token into the current user record.
func (a *Actions) LoadUser(ctx context.Context) error {
	return a.loadUser(ctx)
}

func (a *Actions) loadUser(ctx context.Context) error {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.store.Dispatch(AuthFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(UserLoaded{User: *user})
	return nil
}

func (a *Actions) Logout() {
	a.api.SetToken("")
	a.store.Dispatch(LoggedOut{})
}

func (a *Actions) FetchMyProfile(ctx context.Context) error {
	prof, err := a.api.MyProfile(ctx)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(ProfileLoaded{Profile: *prof})
	return nil
}

func (a *Actions) FetchProfiles(ctx context.Context) error {
	profiles, err := a.api.Profiles(ctx)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(ProfilesLoaded{Profiles: profiles})
	return nil
}

func (a *Actions) FetchProfileByUser(ctx context.Context, userID string) error {
	prof, err := a.api.ProfileByUser(ctx, userID)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(ProfileLoaded{Profile: *prof})
	return nil
}

// SaveProfile creates or updates the profile and raises an alert on
// success.
func (a *Actions) SaveProfile(ctx context.Context, req models.UpsertProfileRequest, created bool) error {
	prof, err := a.api.SaveProfile(ctx, req)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(ProfileUpdated{Profile: *prof})
	if created {
		a.alertAfter("Profile Created", "success")
	} else {
		a.alertAfter("Profile Updated", "success")
	}
	return nil
}

func (a *Actions) AddExperience(ctx context.Context, req models.ExperienceRequest) error {
	prof, err := a.api.AddExperience(ctx, req)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(ProfileUpdated{Profile: *prof})
	a.alertAfter("Experience Added", "success")
	return nil
}

func (a *Actions) RemoveExperience(ctx context.Context, expID string) error {
	prof, err := a.api.RemoveExperience(ctx, expID)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(ProfileUpdated{Profile: *prof})
	a.alertAfter("Experience Removed", "success")
	return nil
}

func (a *Actions) AddEducation(ctx context.Context, req models.EducationRequest) error {
	prof, err := a.api.AddEducation(ctx, req)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(ProfileUpdated{Profile: *prof})
	a.alertAfter("Education Added", "success")
	return nil
}

func (a *Actions) RemoveEducation(ctx context.Context, eduID string) error {
	prof, err := a.api.RemoveEducation(ctx, eduID)
	if err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(ProfileUpdated{Profile: *prof})
	a.alertAfter("Education Removed", "success")
	return nil
}

func (a *Actions) FetchRepos(ctx context.Context, username string) error {
	repos, err := a.api.GithubRepos(ctx, username)
	if err != nil {
		// An unknown Github username just means no repos to show.
		a.store.Dispatch(ReposLoaded{Repos: nil})
		return err
	}
	a.store.Dispatch(ReposLoaded{Repos: repos})
	return nil
}

func (a *Actions) DeleteAccount(ctx context.Context) error {
	if err := a.api.DeleteAccount(ctx); err != nil {
		a.store.Dispatch(ProfileFailed{Err: failure(err)})
		return err
	}
	a.api.SetToken("")
	a.store.Dispatch(ProfileCleared{})
	a.store.Dispatch(LoggedOut{})
	a.alertAfter("Your account has been permanently deleted", "")
	return nil
}

func (a *Actions) FetchPosts(ctx context.Context) error {
	posts, err := a.api.Posts(ctx)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(PostsLoaded{Posts: posts})
	return nil
}

func (a *Actions) FetchPost(ctx context.Context, postID string) error {
	post, err := a.api.Post(ctx, postID)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(PostLoaded{Post: *post})
	return nil
}

func (a *Actions) CreatePost(ctx context.Context, text string) error {
	post, err := a.api.CreatePost(ctx, text)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(PostCreated{Post: *post})
	a.alertAfter("Post Created", "success")
	return nil
}

func (a *Actions) DeletePost(ctx context.Context, postID string) error {
	if err := a.api.DeletePost(ctx, postID); err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(PostDeleted{ID: postID})
	a.alertAfter("Post removed", "success")
	return nil
}

func (a *Actions) Like(ctx context.Context, postID string) error {
	likes, err := a.api.LikePost(ctx, postID)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(LikesUpdated{ID: postID, Likes: likes})
	return nil
}

func (a *Actions) Unlike(ctx context.Context, postID string) error {
	likes, err := a.api.UnlikePost(ctx, postID)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(LikesUpdated{ID: postID, Likes: likes})
	return nil
}

func (a *Actions) Comment(ctx context.Context, postID, text string) error {
	comments, err := a.api.AddComment(ctx, postID, text)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		a.alertAfter(failure(err).Msg, "danger")
		return err
	}
	a.store.Dispatch(CommentsUpdated{ID: postID, Comments: comments})
	a.alertAfter("Comment Added", "success")
	return nil
}

func (a *Actions) DeleteComment(ctx context.Context, postID, commentID string) error {
	comments, err := a.api.DeleteComment(ctx, postID, commentID)
	if err != nil {
		a.store.Dispatch(PostFailed{Err: failure(err)})
		return err
	}
	a.store.Dispatch(CommentsUpdated{ID: postID, Comments: comments})
	a.alertAfter("Comment Removed", "success")
	return nil
}
