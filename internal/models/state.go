package models

// StateKind enumerates the variants of ViewState.
type StateKind string

const (
	StateIdle    StateKind = "idle"
	StateLoading StateKind = "loading"
	StateFailed  StateKind = "failed"
)

// ViewState is one of Idle, Loading or Failed(message). Message is only set for Failed.
type ViewState struct {
	Kind    StateKind `json:"kind"`
	Message string    `json:"message,omitempty"`
}

func Idle() ViewState    { return ViewState{Kind: StateIdle} }
func Loading() ViewState { return ViewState{Kind: StateLoading} }

// Failed returns the failure state carrying a human-readable message.
func Failed(message string) ViewState {
	return ViewState{Kind: StateFailed, Message: message}
}

func (s ViewState) IsIdle() bool    { return s.Kind == StateIdle }
func (s ViewState) IsLoading() bool { return s.Kind == StateLoading }
func (s ViewState) IsFailed() bool  { return s.Kind == StateFailed }
