// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - Ledger: splits a completed job's price into the worker earning and the
//     platform commission and credits the worker's wallet
//   - CenterLocator: picks the nearest active emergency center whose own
//     service radius covers a point
//
// Services are stateless and never touch persistence; command handlers load
// the aggregates, call the service, and save the results in one unit of work.
package services
