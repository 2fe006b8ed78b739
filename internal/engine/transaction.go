// internal/engine/transaction.go
//
// The typed transaction record fed into the engine. The record reaches
// Apply already validated in shape by the boundary (csvio or the HTTP
// handlers): Amount is present for deposits and withdrawals and absent
// otherwise. The engine itself never touches text encoding.

package engine

import "github.com/shopspring/decimal"

// Kind discriminates the five transaction variants.
type Kind uint8

const (
	Deposit Kind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

// String returns the wire name of the kind, matching the CSV "type"
// column.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	}
	return "unknown"
}

// ParseKind maps a wire name back to its Kind. The second result is
// false for anything that is not one of the five transaction types.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "deposit":
		return Deposit, true
	case "withdrawal":
		return Withdrawal, true
	case "dispute":
		return Dispute, true
	case "resolve":
		return Resolve, true
	case "chargeback":
		return Chargeback, true
	}
	return 0, false
}

// Transaction is one record of the input log.
//
// Amount is meaningful only for Deposit and Withdrawal; dispute, resolve
// and chargeback reference a prior deposit by TX and carry no amount.
type Transaction struct {
	Kind   Kind
	Client uint16
	TX     uint32
	Amount decimal.Decimal
}
