package entity

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrForbidden       = errors.New("requester is not the post author")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyLiked    = errors.New("like already exists")
)
