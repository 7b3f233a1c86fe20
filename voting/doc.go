/*
Package voting orchestrates the cross-chain governance voting workflow: one
wallet identity provisioned up front, then any number of votes cast through
it on the governed chains.

A Session moves through three states. It begins Unprovisioned; Start
provisions the smart wallet and moves it to Provisioned; the first CastVote
attempt moves it to VoteSubmitted, where it stays while further votes are
cast.

	session, err := voting.NewSession(lggr, transactor, governors, voting.Config{
		TokenSymbol: "DAO",
		Networks:    chain.All(),
	})
	if err != nil {
		return err
	}

	if err := session.Start(ctx); err != nil {
		return err // no wallet, no votes
	}

	result, err := session.CastVote(ctx, voting.VoteRequest{
		ProposalID: proposalID,
		Choice:     governor.VoteFor,
		NetworkID:  "optimism",
		Reason:     "aligns emissions with usage",
	})

Failure handling follows the workflow's one rule of thumb: an error before
anything leaves the process (a bad vote choice, an unknown network, a
missing governor ref) leaves the session state untouched, while a failed
submission attempt still counts as an attempt and transitions the session.
Nothing is retried automatically; every error surfaces to the caller with
the service response attached where one exists.

Each external call runs as an operation and leaves a timestamped report,
available via Reports, so a governance run can be audited after the fact.
*/
package voting
