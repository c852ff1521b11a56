package domain

// RedirectState is the terminal state of one redirect pipeline run.
type RedirectState int

const (
	StateRedirecting RedirectState = iota
	StateNotFound
	StateInactive
)

type RedirectOutcome struct {
	State    RedirectState
	Location string
}
