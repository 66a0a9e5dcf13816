package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrNotFound     = errors.New("message not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRejected     = errors.New("message rejected")
	ErrServer       = errors.New("server error")
)
