package entity

import "errors"

var (
	ErrVideoNotFound  = errors.New("video not found")
	ErrGoatNotFound   = errors.New("goat not found")
	ErrDeviceRequired = errors.New("device id is required")

	// ErrLikeConflict means two toggles for the same (video, device) pair raced
	// past the row lock and hit the unique index. The caller re-runs the toggle,
	// which then observes the winner's row.
	ErrLikeConflict = errors.New("concurrent like conflict")
)
