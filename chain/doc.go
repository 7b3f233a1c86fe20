/*
Package chain identifies the blockchains the governance token is deployed on.

Each governed network is represented by a Network value pairing the wire
identifier used in Smart Wallet API payloads ("ethereum", "polygon", ...)
with the canonical chain selector from
github.com/smartcontractkit/chain-selectors. The set of networks is fixed:
the token lives on six EVM mainnets, and every chain identifier flowing
through the voting workflow resolves against that set.

	network, err := chain.FromID("ethereum")
	if err != nil {
		// identifier outside the governed set
	}

	fmt.Println(network.Selector)  // 5009297550715157269
	fmt.Println(network.Family())  // "evm"
*/
package chain
