// internal/engine/engine.go

// Package engine replays an ordered log of payment transactions into
// per-client account balances, enforcing the dispute/resolve/chargeback
// lifecycle on top of deposit/withdrawal accounting.
//
// The Engine is the aggregate root: it exclusively owns the account map
// and the deposit ledger, and a single sync.Mutex serialises every state
// change so one engine instance can be shared by the HTTP layer. Batch
// replay is single-threaded and pays only the uncontended lock.
//
// Amounts are shopspring decimals throughout: comparisons that gate fund
// movement must be exact, never float.
package engine

import (
	"sync"
)

// Engine applies transactions against the account store and the deposit
// ledger. Accounts and ledger entries are created on demand and never
// deleted, only mutated under the mutex.
type Engine struct {
	mu       sync.Mutex
	accounts map[uint16]*Account
	ledger   map[uint32]*ledgerEntry
}

// New returns an empty engine with no accounts and no retained deposits.
func New() *Engine {
	return &Engine{
		accounts: make(map[uint16]*Account),
		ledger:   make(map[uint32]*ledgerEntry),
	}
}

// account returns the account for client, creating a zero-balance one on
// first reference. Caller must hold e.mu.
func (e *Engine) account(client uint16) *Account {
	a, ok := e.accounts[client]
	if !ok {
		a = &Account{Client: client}
		e.accounts[client] = a
	}
	return a
}

// Apply runs one transaction through the matching handler. Inapplicable
// transactions (locked account, insufficient funds, unknown or
// wrongly-stated ledger entry) change nothing; the returned Outcome says
// which case was hit and is informational only.
func (e *Engine) Apply(tx Transaction) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch tx.Kind {
	case Deposit:
		return e.applyDeposit(tx)
	case Withdrawal:
		return e.applyWithdrawal(tx)
	case Dispute:
		return e.applyDispute(tx)
	case Resolve:
		return e.applyResolve(tx)
	case Chargeback:
		return e.applyChargeback(tx)
	}
	return StateConflict
}

// applyDeposit credits available and total, then retains the deposit in
// the ledger so a later dispute can reference it.
func (e *Engine) applyDeposit(tx Transaction) Outcome {
	a := e.account(tx.Client)
	if a.Locked {
		return AccountLocked
	}

	a.Available = a.Available.Add(tx.Amount)
	a.Total = a.Total.Add(tx.Amount)

	e.ledger[tx.TX] = &ledgerEntry{
		Client: tx.Client,
		Amount: tx.Amount,
		State:  StateNone,
	}
	return Applied
}

// applyWithdrawal debits available and total, but only when the full
// amount is available. There is no partial withdrawal. Withdrawals are
// not retained in the ledger and therefore can never be disputed.
func (e *Engine) applyWithdrawal(tx Transaction) Outcome {
	a := e.account(tx.Client)
	if a.Locked {
		return AccountLocked
	}
	if a.Available.Cmp(tx.Amount) < 0 {
		return InsufficientFunds
	}

	a.Available = a.Available.Sub(tx.Amount)
	a.Total = a.Total.Sub(tx.Amount)
	return Applied
}

// applyDispute freezes the referenced deposit: its amount moves from
// available to held on the depositor's account and the entry becomes
// Disputed. Total is unchanged. Available may go negative here when the
// deposited funds were already withdrawn; the debt is carried as-is.
func (e *Engine) applyDispute(tx Transaction) Outcome {
	entry, ok := e.ledger[tx.TX]
	if !ok {
		return UnknownTransaction
	}
	if entry.State != StateNone {
		return StateConflict
	}

	a := e.account(entry.Client)
	a.Available = a.Available.Sub(entry.Amount)
	a.Held = a.Held.Add(entry.Amount)
	entry.State = StateDisputed
	return Applied
}

// applyResolve reverses an open dispute exactly: held funds return to
// available and the entry goes back to StateNone, re-disputable.
func (e *Engine) applyResolve(tx Transaction) Outcome {
	entry, ok := e.ledger[tx.TX]
	if !ok {
		return UnknownTransaction
	}
	if entry.State != StateDisputed {
		return StateConflict
	}

	a := e.account(entry.Client)
	a.Available = a.Available.Add(entry.Amount)
	a.Held = a.Held.Sub(entry.Amount)
	entry.State = StateNone
	return Applied
}

// applyChargeback removes the disputed funds for good and locks the
// account. Locked blocks later deposits and withdrawals on that client;
// disputes on other retained deposits are still processed.
func (e *Engine) applyChargeback(tx Transaction) Outcome {
	entry, ok := e.ledger[tx.TX]
	if !ok {
		return UnknownTransaction
	}
	if entry.State != StateDisputed {
		return StateConflict
	}

	a := e.account(entry.Client)
	a.Held = a.Held.Sub(entry.Amount)
	a.Total = a.Total.Sub(entry.Amount)
	entry.State = StateNone
	a.Locked = true
	return Applied
}

// Account returns a copy of the account for client, or false if that
// client was never referenced. Read-only; never creates.
func (e *Engine) Account(client uint16) (Account, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.accounts[client]
	if !ok {
		return Account{}, false
	}
	return *a, true
}

// Snapshot returns a copy of every account ever referenced, in no
// guaranteed order. Copies keep callers from reaching the engine's
// internal state.
func (e *Engine) Snapshot() []Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Account, 0, len(e.accounts))
	for _, a := range e.accounts {
		out = append(out, *a)
	}
	return out
}
