package handler

import "errors"

var (
	errInvalidPostID    = errors.New("invalid post ID")
	errInvalidUsername  = errors.New("invalid username")
	errStoreUnavailable = errors.New("store unavailable")
)
