/*
Package walletapi provides the client for the external Smart Wallet API, the
service that holds the cross-chain wallet and sponsors gas for governance
transactions.

The service exposes two operations, mirrored by the Transactor interface:
provisioning a wallet identity scoped to a token symbol and a set of
governed chains, and submitting a prepared contract call as a gas-sponsored
transaction on one of those chains.

	client, err := walletapi.NewClient(walletapi.ClientConfig{
		BaseURL:     "https://wallets.example.com",
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		Logger:      lggr,
	})
	if err != nil {
		return err
	}

	identity, err := client.ProvisionWallet(ctx, "DAO", chain.All())
	if err != nil {
		var provErr *walletapi.ProvisioningError
		if errors.As(err, &provErr) {
			// provErr carries the service's status and body verbatim
		}
		return err
	}

	result, err := client.SubmitTransaction(ctx, identity, network, governorAddr, calldata)

Failures are never retried here: a ProvisioningError or SubmissionError is
terminal for the operation that raised it and carries the raw service
response for diagnostics. Timeouts and cancellation belong to the injected
http.Client and the caller's context.

The memory subpackage provides an in-memory stand-in for the service, and
the provider subpackage wires client construction with optional dry-run
behavior.
*/
package walletapi
