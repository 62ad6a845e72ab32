// Package wallet models the money side of the marketplace: one Wallet per user
// and the append-only Transaction entries written by settlement.
package wallet
