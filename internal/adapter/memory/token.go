package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// InitialSupply is minted to the owner when a Token is constructed.
var InitialSupply = domain.InitialTokenSupply

type allowanceKey struct {
	owner, spender domain.Address
}

// Token is an in-memory stablecoin for development and tests. It mirrors
// a standard fungible token, plus an unrestricted faucet.
type Token struct {
	addr  domain.Address
	owner domain.Address

	mu         sync.Mutex
	balances   map[domain.Address]domain.Amount
	allowances map[allowanceKey]domain.Amount
	supply     domain.Amount
}

// NewToken creates a token at addr and mints InitialSupply to owner.
func NewToken(addr, owner domain.Address) *Token {
	t := &Token{
		addr:       addr,
		owner:      owner,
		balances:   map[domain.Address]domain.Amount{},
		allowances: map[allowanceKey]domain.Amount{},
	}
	t.balances[owner] = InitialSupply
	t.supply = InitialSupply
	return t
}

var _ port.TokenLedger = (*Token)(nil)

func (t *Token) Address() domain.Address { return t.addr }

func (t *Token) Decimals() uint8 { return domain.TokenDecimals }

func (t *Token) Metadata() port.TokenMetadata {
	return port.TokenMetadata{
		Address:  t.addr,
		Name:     "Mock USD Coin",
		Symbol:   "USDC",
		Decimals: domain.TokenDecimals,
		Owner:    t.owner,
	}
}

func (t *Token) TotalSupply(_ context.Context) (domain.Amount, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.supply, nil
}

func (t *Token) BalanceOf(_ context.Context, owner domain.Address) (domain.Amount, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balances[owner], nil
}

func (t *Token) Allowance(_ context.Context, owner, spender domain.Address) (domain.Amount, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allowances[allowanceKey{owner, spender}], nil
}

func (t *Token) Approve(_ context.Context, owner, spender domain.Address, amount domain.Amount) error {
	if owner.IsZero() || spender.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount < 0 {
		return domain.ErrInvalidAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.allowances[allowanceKey{owner, spender}] = amount
	return nil
}

func (t *Token) Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error {
	tx := t.begin()
	if err := tx.Transfer(ctx, from, to, amount); err != nil {
		return err
	}
	return tx.commit()
}

func (t *Token) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount domain.Amount) error {
	tx := t.begin()
	if err := tx.TransferFrom(ctx, spender, from, to, amount); err != nil {
		return err
	}
	return tx.commit()
}

func (t *Token) Mint(_ context.Context, caller, to domain.Address, amount domain.Amount) error {
	if caller != t.owner {
		return domain.ErrNotTokenOwner
	}
	return t.mint(to, amount)
}

func (t *Token) Faucet(_ context.Context, to domain.Address, amount domain.Amount) error {
	return t.mint(to, amount)
}

func (t *Token) FaucetCooldown(_ context.Context, _ domain.Address) (time.Duration, error) {
	return 0, nil
}

func (t *Token) mint(to domain.Address, amount domain.Amount) error {
	if to.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	supply, err := domain.AddAmounts(t.supply, amount)
	if err != nil {
		return fmt.Errorf("mint %d: %w", amount, err)
	}
	bal, err := domain.AddAmounts(t.balances[to], amount)
	if err != nil {
		return fmt.Errorf("mint %d to %s: %w", amount, to, err)
	}
	t.balances[to] = bal
	t.supply = supply
	return nil
}

// begin opens a journal of token movements. Nothing is visible to other
// callers until commit.
func (t *Token) begin() *tokenTx {
	return &tokenTx{
		base:       t,
		balances:   map[domain.Address]domain.Amount{},
		allowances: map[allowanceKey]domain.Amount{},
	}
}

// tokenTx stages balance and allowance deltas against a Token.
type tokenTx struct {
	base       *Token
	balances   map[domain.Address]domain.Amount
	allowances map[allowanceKey]domain.Amount
}

var _ port.Token = (*tokenTx)(nil)

func (tx *tokenTx) Address() domain.Address { return tx.base.addr }

func (tx *tokenTx) Decimals() uint8 { return domain.TokenDecimals }

func (tx *tokenTx) BalanceOf(ctx context.Context, owner domain.Address) (domain.Amount, error) {
	b, err := tx.base.BalanceOf(ctx, owner)
	return b + tx.balances[owner], err
}

func (tx *tokenTx) Allowance(ctx context.Context, owner, spender domain.Address) (domain.Amount, error) {
	a, err := tx.base.Allowance(ctx, owner, spender)
	return a + tx.allowances[allowanceKey{owner, spender}], err
}

func (tx *tokenTx) Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error {
	if to.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	bal, err := tx.BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if bal < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", domain.ErrInsufficientBalance, from, bal, amount)
	}
	if from != to {
		dst, err := tx.BalanceOf(ctx, to)
		if err != nil {
			return err
		}
		if _, err = domain.AddAmounts(dst, amount); err != nil {
			return fmt.Errorf("credit %s: %w", to, err)
		}
	}
	tx.balances[from] -= amount
	tx.balances[to] += amount
	return nil
}

func (tx *tokenTx) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount domain.Amount) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	allowed, err := tx.Allowance(ctx, from, spender)
	if err != nil {
		return err
	}
	if allowed < amount {
		return fmt.Errorf("%w: %s allows %d, needs %d", domain.ErrInsufficientAllowance, from, allowed, amount)
	}
	if err = tx.Transfer(ctx, from, to, amount); err != nil {
		return err
	}
	tx.allowances[allowanceKey{from, spender}] -= amount
	return nil
}

// commit applies the journal if no balance or allowance would go negative
// and no balance would exceed domain.MaxAmount.
// Other journals may have committed since the reads, so the check is
// repeated under the ledger lock.
func (tx *tokenTx) commit() error {
	t := tx.base
	t.mu.Lock()
	defer t.mu.Unlock()
	for addr, d := range tx.balances {
		if d > 0 {
			if _, err := domain.AddAmounts(t.balances[addr], d); err != nil {
				return fmt.Errorf("credit %s: %w", addr, err)
			}
		} else if t.balances[addr]+d < 0 {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, addr)
		}
	}
	for key, d := range tx.allowances {
		if t.allowances[key]+d < 0 {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientAllowance, key.owner)
		}
	}
	for addr, d := range tx.balances {
		t.balances[addr] += d
	}
	for key, d := range tx.allowances {
		t.allowances[key] += d
	}
	return nil
}
