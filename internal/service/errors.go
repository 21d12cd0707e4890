package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrCredentialsRequired    = errors.New("email and password are required")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrEmailTaken             = errors.New("email is already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrCurrentPasswordWrong   = errors.New("current password is incorrect")
	ErrUserNotFound           = errors.New("user not found")
	ErrBodyTooShort           = errors.New("testimonial body must be at least 30 characters")
	ErrLocationRequired       = errors.New("hospital unit, locality and county are required")
	ErrReplyEmpty             = errors.New("reply cannot be empty")
	ErrReplyTooLong           = errors.New("reply cannot exceed 500 characters")
	ErrPostNotFound           = errors.New("post not found")
	ErrPostNotFoundOrDecided  = errors.New("post not found or already processed")
	ErrPostNotApproved        = errors.New("cannot comment on an unapproved post")
	ErrAttachmentNotFound     = errors.New("attachment not found")
	ErrFileRequired           = errors.New("no file uploaded")
	ErrFileNotSupported       = errors.New("file type not allowed, only JPEG and PNG")
	ErrFileTooLarge           = errors.New("file exceeds the maximum allowed size")
	ErrTooManyFiles           = errors.New("too many files uploaded")
	ErrParamInvalid           = errors.New("invalid request parameters")
	UnExpectedError           = errors.New("unexpected error, please try again later")
)

var ErrorMap = map[error]int{
	ErrCredentialsRequired:   BadRequest,
	ErrPasswordTooShort:      BadRequest,
	ErrEmailTaken:            Conflict,
	ErrInvalidCredentials:    Unauthorized,
	ErrCurrentPasswordWrong:  Unauthorized,
	ErrUserNotFound:          NotFound,
	ErrBodyTooShort:          BadRequest,
	ErrLocationRequired:      BadRequest,
	ErrReplyEmpty:            BadRequest,
	ErrReplyTooLong:          BadRequest,
	ErrPostNotFound:          NotFound,
	ErrPostNotFoundOrDecided: NotFound,
	ErrPostNotApproved:       Conflict,
	ErrAttachmentNotFound:    NotFound,
	ErrFileRequired:          BadRequest,
	ErrFileNotSupported:      BadRequest,
	ErrFileTooLarge:          BadRequest,
	ErrTooManyFiles:          BadRequest,
	ErrParamInvalid:          BadRequest,
	UnExpectedError:          InternalServerError,
}
