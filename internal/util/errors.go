package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrEmailTaken           = errors.New("email already in use")
	ErrUsernameTaken        = errors.New("username already in use")
	ErrTestNotFound         = errors.New("test not found")
	ErrInvalidSecurityLevel = errors.New("invalid security level")
	ErrInvalidRole          = errors.New("invalid role")
	ErrRoleNotAllowed       = errors.New("role not allowed for creator")
	ErrSelfDelete           = errors.New("cannot delete own account")
	ErrDeleteNotAllowed     = errors.New("not allowed to delete this user")
	ErrTargetUserNotFound   = errors.New("target user not found")
	ErrInvalidTest          = errors.New("invalid test")
)
