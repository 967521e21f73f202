// Package wallet provides the in-process balance store that settles
// marketplace payments. It implements ledger.PaymentSettler, so a failed
// debit surfaces inside the buy transaction and rolls the whole purchase
// back.
package wallet

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// ErrInsufficientFunds indicates the paying principal's balance does not
// cover the transfer amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrBalanceOverflow indicates a credit would overflow the receiving
// principal's balance.
var ErrBalanceOverflow = errors.New("balance overflow")

// Wallet holds per-principal balances guarded by a single mutex.
type Wallet struct {
	mu       sync.Mutex
	balances map[models.Principal]uint64
}

// New returns an empty Wallet.
func New() *Wallet {
	return &Wallet{balances: make(map[models.Principal]uint64)}
}

// Balance returns the principal's current balance.
func (w *Wallet) Balance(p models.Principal) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balances[p]
}

// Credit adds amount to the principal's balance.
func (w *Wallet) Credit(p models.Principal, amount uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.balances[p] > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}
	w.balances[p] += amount
	return nil
}

// Transfer moves amount from one principal to the other, atomically with
// respect to all other wallet operations. A transfer between the same
// principal is a no-op beyond the balance check.
func (w *Wallet) Transfer(_ context.Context, from, to models.Principal, amount uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.balances[from] < amount {
		return ErrInsufficientFunds
	}
	if from == to {
		return nil
	}
	if w.balances[to] > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}
	w.balances[from] -= amount
	w.balances[to] += amount
	return nil
}
