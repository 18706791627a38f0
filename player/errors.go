package player

import (
	"errors"
	"fmt"
)

// ErrNoStreamURL is reported when the resolver printed nothing.
var ErrNoStreamURL = errors.New("no stream URL")

// ErrInterrupted is returned when an interrupt signal ended the session and the exit hook returned.
var ErrInterrupted = errors.New("interrupt")

// Kind classifies playback failures.
type Kind int

const (
	// KindResolve means the stream URL could not be obtained. Nothing was spawned.
	KindResolve Kind = iota + 1
	// KindSpawn means the decoder process could not be started.
	KindSpawn
	// KindExit means the decoder exited with a non-zero code.
	KindExit
	// KindIO means waiting on the decoder failed.
	KindIO
)

// Error is a failed playback attempt.
type Error struct {
	Kind Kind
	// Code is the decoder exit code, set for KindExit.
	Code int
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindExit:
		return fmt.Sprintf("decoder exited with code %d", e.Code)
	case KindSpawn:
		return fmt.Sprintf("spawn decoder: %v", e.Err)
	case KindIO:
		return fmt.Sprintf("decoder: %v", e.Err)
	default:
		if errors.Is(e.Err, ErrNoStreamURL) {
			return e.Err.Error()
		}
		return fmt.Sprintf("resolve stream: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
