/*
Package operations provides a small framework for executing the external-call
steps of the governance workflow in a structured, traceable manner.

# Core Components

Operation:
  - Defines a single operation with inputs, dependencies, and outputs
  - Includes versioning, a description, and execution logic
  - Supports generic typing for type-safe operation definitions

Executor:
  - Executes operations and records a report per attempt
  - Supports opt-in retry policies for callers that want them; nothing is
    retried unless explicitly enabled

Reporter:
  - Tracks operation execution results and metadata
  - Keeps reports in memory for inspection after a run

# Basic Usage

	// Define an operation
	op := operations.NewOperation(
		"wallet-provision", semver.MustParse("1.0.0"), "provisions a wallet", handler,
	)

	// Execute the operation
	bundle := operations.NewBundle(func() context.Context { return ctx }, logger, reporter)
	report, err := operations.ExecuteOperation(bundle, op, deps, input)
*/
package operations
