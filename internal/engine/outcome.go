// internal/engine/outcome.go
//
// Apply absorbs every inapplicable transaction as a no-op: the input log
// is presumed externally validated and the engine's job is to stay
// consistent, not to report bad input. The Outcome code exists for
// logging and tests only; no caller is required to look at it and no
// outcome is an error.

package engine

// Outcome classifies what Apply did with a transaction.
type Outcome uint8

const (
	// Applied means the handler mutated account state.
	Applied Outcome = iota
	// AccountLocked: deposit or withdrawal against a locked account.
	AccountLocked
	// InsufficientFunds: withdrawal larger than the available balance.
	InsufficientFunds
	// UnknownTransaction: dispute/resolve/chargeback referencing a tx id
	// that was never deposited.
	UnknownTransaction
	// StateConflict: the referenced ledger entry is not in the dispute
	// state the operation requires.
	StateConflict
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AccountLocked:
		return "account_locked"
	case InsufficientFunds:
		return "insufficient_funds"
	case UnknownTransaction:
		return "unknown_transaction"
	case StateConflict:
		return "state_conflict"
	}
	return "unknown"
}
