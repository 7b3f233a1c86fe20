package voting

import "fmt"

// State identifies where a session is in the governance workflow.
type State int

const (
	// StateUnprovisioned is the initial state. No wallet identity exists and
	// votes cannot be cast.
	StateUnprovisioned State = iota
	// StateProvisioned means the wallet identity is established.
	StateProvisioned
	// StateVoteSubmitted means at least one vote submission was attempted.
	// The session remains usable for further votes.
	StateVoteSubmitted
)

// String returns the human readable name of the state.
func (s State) String() string {
	switch s {
	case StateUnprovisioned:
		return "unprovisioned"
	case StateProvisioned:
		return "provisioned"
	case StateVoteSubmitted:
		return "vote_submitted"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}
