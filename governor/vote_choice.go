package governor

import "fmt"

// VoteChoice is the support value the governor contract accepts for a vote.
// The numeric values follow the Bravo-compatible counting convention used by
// the deployed governors.
type VoteChoice uint8

const (
	VoteAgainst VoteChoice = 0
	VoteFor     VoteChoice = 1
	VoteAbstain VoteChoice = 2
)

// Validate returns an error when the choice is not one of the three defined
// support values. No other values are valid.
func (c VoteChoice) Validate() error {
	switch c {
	case VoteAgainst, VoteFor, VoteAbstain:
		return nil
	default:
		return fmt.Errorf("invalid vote choice: %d", uint8(c))
	}
}

// String returns the human readable name of the choice.
func (c VoteChoice) String() string {
	switch c {
	case VoteAgainst:
		return "against"
	case VoteFor:
		return "for"
	case VoteAbstain:
		return "abstain"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}
