// Package memory provides an in-memory implementation of the Smart Wallet
// API client.
//
// This package is designed for tests and local development when you don't
// need the real wallet service. All data is stored in memory and is lost
// when the service is garbage collected.
//
// # Thread Safety
//
// Service is thread-safe and uses sync.RWMutex to protect concurrent access
// to internal data structures. Multiple goroutines can safely call methods
// on the same Service instance concurrently.
//
// # Usage
//
// Create a new in-memory service and use it like any other Transactor:
//
//	svc := memory.NewService()
//
//	identity, err := svc.ProvisionWallet(ctx, "DAO", chain.All())
//	result, err := svc.SubmitTransaction(ctx, identity, network, to, calldata)
//
// Every accepted submission is recorded and can be inspected:
//
//	for _, sub := range svc.Submissions() {
//	    fmt.Println(sub.Chain, sub.To, sub.AckID)
//	}
//
// # Failure Injection
//
// Service-side rejections can be staged to exercise failure handling:
//
//	svc.FailSubmission(503, "sponsorship budget exhausted")
//	// ... submissions now fail with a *walletapi.SubmissionError
//	svc.ClearSubmissionFailure()
//
// # Limitations
//
//   - No persistence: all data is stored in memory only.
//   - Test-only: this implementation is not intended for production use.
package memory
