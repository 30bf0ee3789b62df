package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProfileNotFound = errors.New("profile not found")

	ErrPostNotFound    = errors.New("post not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not been liked")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthorized   = errors.New("not authorized")

	ErrNoGithubProfile = errors.New("no github profile")
)
