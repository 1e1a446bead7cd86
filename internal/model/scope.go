package model

// Scope carries per-request caller context through use cases.
type Scope struct {
	SessionID string
}
