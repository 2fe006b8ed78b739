// internal/engine/account.go
//
// Domain model for the engine: the client account and the retained
// deposit record that disputes act on. No transport or encoding details
// in this file.

package engine

import "github.com/shopspring/decimal"

// Account is the balance state of one client.
//
// Available are funds the client may withdraw or dispute against right
// now. Held are funds frozen under an open dispute. Total is always
// Available + Held after every applied transaction. Locked is set by a
// chargeback and is terminal: nothing in this system ever clears it.
type Account struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}

// DisputeState is where a ledger entry sits in the dispute lifecycle.
// StateNone ⇄ StateDisputed via dispute/resolve; chargeback moves a
// disputed entry back to StateNone and locks the owning account, so no
// further funds ever move through that entry.
type DisputeState uint8

const (
	StateNone DisputeState = iota
	StateDisputed
)

// ledgerEntry is the retained record of a deposit. Deposits are the only
// transaction kind that can be disputed, so nothing else is recorded.
// Client here is authoritative: dispute/resolve/chargeback act on this
// account, never on the client field of the triggering record.
type ledgerEntry struct {
	Client uint16
	Amount decimal.Decimal
	State  DisputeState
}
