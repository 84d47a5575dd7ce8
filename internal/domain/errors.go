package domain

import "errors"

var (
	ErrNoCodeProvided = errors.New("No code provided")
	ErrMalformedReply = errors.New("malformed arbitration reply")
)
