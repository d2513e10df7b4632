package badgertoken

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/tdex-network/tdex-timelock/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const (
	tokenDir = "token"

	supplyKey = "supply"
)

type account struct {
	Name      string
	Balance   uint64
	Allowance uint64
}

type supply struct {
	Total uint64
}

// Token is the simulated fungible token of package inmemorytoken, with
// balances and allowances persisted in a badger store so that they survive
// restarts together with the deposit ledger.
type Token struct {
	lock  *sync.Mutex
	store *badgerhold.Store

	escrowAccount string
}

// NewToken opens (or creates if not exists) the token store under the given
// base dir. An empty base dir makes the store live in memory only.
func NewToken(
	escrowAccount, baseDbDir string, logger badger.Logger,
) (*Token, error) {
	if len(escrowAccount) <= 0 {
		return nil, domain.ErrInvalidAccount
	}

	var dir string
	if len(baseDbDir) > 0 {
		dir = filepath.Join(baseDbDir, tokenDir)
	}
	store, err := createDb(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening token db: %w", err)
	}

	return &Token{
		lock:          &sync.Mutex{},
		store:         store,
		escrowAccount: escrowAccount,
	}, nil
}

func (t *Token) EscrowAccount() string {
	return t.escrowAccount
}

func (t *Token) Pull(_ context.Context, from string, amount uint64) error {
	if len(from) <= 0 {
		return domain.ErrInvalidAccount
	}

	return t.update(func(tx *badger.Txn) error {
		owner, err := t.getAccount(tx, from)
		if err != nil {
			return err
		}
		if owner.Allowance < amount {
			return domain.ErrInsufficientAllowance
		}
		owner.Allowance -= amount
		return t.transfer(tx, owner, t.escrowAccount, amount)
	})
}

func (t *Token) Push(_ context.Context, to string, amount uint64) error {
	if len(to) <= 0 {
		return domain.ErrInvalidAccount
	}

	return t.update(func(tx *badger.Txn) error {
		escrow, err := t.getAccount(tx, t.escrowAccount)
		if err != nil {
			return err
		}
		return t.transfer(tx, escrow, to, amount)
	})
}

func (t *Token) BalanceOf(_ context.Context, name string) (uint64, error) {
	acc, err := t.viewAccount(name)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Approve sets the amount the escrow is allowed to pull from owner,
// overwriting any previous allowance.
func (t *Token) Approve(owner string, amount uint64) error {
	if len(owner) <= 0 {
		return domain.ErrInvalidAccount
	}

	return t.update(func(tx *badger.Txn) error {
		acc, err := t.getAccount(tx, owner)
		if err != nil {
			return err
		}
		acc.Allowance = amount
		return t.store.TxUpsert(tx, acc.Name, acc)
	})
}

// Allowance returns the amount the escrow can still pull from owner.
func (t *Token) Allowance(owner string) uint64 {
	acc, err := t.viewAccount(owner)
	if err != nil {
		return 0
	}
	return acc.Allowance
}

// Mint creates new tokens for the given account. The escrow account can only
// be funded through Pull.
func (t *Token) Mint(name string, amount uint64) error {
	if len(name) <= 0 || name == t.escrowAccount {
		return domain.ErrInvalidAccount
	}

	return t.update(func(tx *badger.Txn) error {
		s, err := t.getSupply(tx)
		if err != nil {
			return err
		}
		if amount > math.MaxUint64-s.Total {
			return domain.ErrAmountOverflow
		}
		acc, err := t.getAccount(tx, name)
		if err != nil {
			return err
		}

		s.Total += amount
		acc.Balance += amount
		if err := t.store.TxUpsert(tx, supplyKey, s); err != nil {
			return err
		}
		return t.store.TxUpsert(tx, acc.Name, acc)
	})
}

// Transfer moves tokens between two accounts.
func (t *Token) Transfer(from, to string, amount uint64) error {
	if len(from) <= 0 || len(to) <= 0 {
		return domain.ErrInvalidAccount
	}

	return t.update(func(tx *badger.Txn) error {
		sender, err := t.getAccount(tx, from)
		if err != nil {
			return err
		}
		return t.transfer(tx, sender, to, amount)
	})
}

func (t *Token) TotalSupply() uint64 {
	var total uint64
	//nolint
	t.store.Badger().View(func(tx *badger.Txn) error {
		s, err := t.getSupply(tx)
		if err != nil {
			return err
		}
		total = s.Total
		return nil
	})
	return total
}

func (t *Token) Close() {
	//nolint
	t.store.Close()
}

// transfer debits sender and credits the account named to in the same
// transaction. Balances never overflow since their sum is bounded by the
// total supply.
func (t *Token) transfer(
	tx *badger.Txn, sender *account, to string, amount uint64,
) error {
	if sender.Balance < amount {
		return domain.ErrInsufficientBalance
	}
	sender.Balance -= amount
	if err := t.store.TxUpsert(tx, sender.Name, sender); err != nil {
		return err
	}

	receiver, err := t.getAccount(tx, to)
	if err != nil {
		return err
	}
	receiver.Balance += amount
	return t.store.TxUpsert(tx, receiver.Name, receiver)
}

// update serializes writers, so that badger never reports conflicts between
// concurrent transfers.
func (t *Token) update(fn func(tx *badger.Txn) error) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.store.Badger().Update(fn)
}

func (t *Token) viewAccount(name string) (*account, error) {
	var acc *account
	if err := t.store.Badger().View(func(tx *badger.Txn) error {
		a, err := t.getAccount(tx, name)
		if err != nil {
			return err
		}
		acc = a
		return nil
	}); err != nil {
		return nil, err
	}
	return acc, nil
}

func (t *Token) getAccount(tx *badger.Txn, name string) (*account, error) {
	acc := &account{}
	if err := t.store.TxGet(tx, name, acc); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return &account{Name: name}, nil
		}
		return nil, err
	}
	return acc, nil
}

func (t *Token) getSupply(tx *badger.Txn) (*supply, error) {
	s := &supply{}
	if err := t.store.TxGet(tx, supplyKey, s); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return &supply{}, nil
		}
		return nil, err
	}
	return s, nil
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
