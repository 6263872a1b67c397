package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// TokenLedger implements port.TokenLedger on the token_* tables.
type TokenLedger struct {
	pool *pgxpool.Pool
	meta port.TokenMetadata
}

var _ port.TokenLedger = (*TokenLedger)(nil)

// NewTokenLedger returns the ledger of the token at addr. Call Init before
// first use.
func NewTokenLedger(pool *pgxpool.Pool, addr, owner domain.Address) *TokenLedger {
	return &TokenLedger{
		pool: pool,
		meta: port.TokenMetadata{
			Address:  addr,
			Name:     "Mock USD Coin",
			Symbol:   "USDC",
			Decimals: domain.TokenDecimals,
			Owner:    owner,
		},
	}
}

// Init registers the token and mints initialSupply to the owner. It is a
// no-op when the token already exists.
func (l *TokenLedger) Init(ctx context.Context, initialSupply domain.Amount) error {
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `INSERT INTO tokens (address, name, symbol, decimals, owner, total_supply)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			l.meta.Address, l.meta.Name, l.meta.Symbol, int16(l.meta.Decimals), l.meta.Owner, initialSupply)
		if err != nil || tag.RowsAffected() == 0 {
			return err
		}
		return l.ops(tx).credit(ctx, l.meta.Owner, initialSupply)
	})
}

func (l *TokenLedger) ops(q querier) tokenOps {
	return tokenOps{q: q, addr: l.meta.Address}
}

func (l *TokenLedger) Address() domain.Address { return l.meta.Address }

func (l *TokenLedger) Decimals() uint8 { return l.meta.Decimals }

func (l *TokenLedger) Metadata() port.TokenMetadata { return l.meta }

func (l *TokenLedger) TotalSupply(ctx context.Context) (domain.Amount, error) {
	var supply domain.Amount
	err := l.pool.QueryRow(ctx, `SELECT total_supply FROM tokens WHERE address = $1`, l.meta.Address).Scan(&supply)
	return supply, err
}

func (l *TokenLedger) BalanceOf(ctx context.Context, owner domain.Address) (domain.Amount, error) {
	return l.ops(l.pool).BalanceOf(ctx, owner)
}

func (l *TokenLedger) Allowance(ctx context.Context, owner, spender domain.Address) (domain.Amount, error) {
	return l.ops(l.pool).Allowance(ctx, owner, spender)
}

func (l *TokenLedger) Approve(ctx context.Context, owner, spender domain.Address, amount domain.Amount) error {
	if owner.IsZero() || spender.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount < 0 {
		return domain.ErrInvalidAmount
	}
	_, err := l.pool.Exec(ctx, `INSERT INTO token_allowances (token, owner, spender, amount) VALUES ($1,$2,$3,$4)
ON CONFLICT (token, owner, spender) DO UPDATE SET amount = EXCLUDED.amount`,
		l.meta.Address, owner, spender, amount)
	return err
}

func (l *TokenLedger) Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error {
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		return l.ops(tx).Transfer(ctx, from, to, amount)
	})
}

func (l *TokenLedger) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount domain.Amount) error {
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		return l.ops(tx).TransferFrom(ctx, spender, from, to, amount)
	})
}

func (l *TokenLedger) Mint(ctx context.Context, caller, to domain.Address, amount domain.Amount) error {
	if caller != l.meta.Owner {
		return domain.ErrNotTokenOwner
	}
	return l.mint(ctx, to, amount)
}

func (l *TokenLedger) Faucet(ctx context.Context, to domain.Address, amount domain.Amount) error {
	return l.mint(ctx, to, amount)
}

func (l *TokenLedger) FaucetCooldown(context.Context, domain.Address) (time.Duration, error) {
	return 0, nil
}

func (l *TokenLedger) mint(ctx context.Context, to domain.Address, amount domain.Amount) error {
	if to.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE tokens SET total_supply = total_supply + $2
WHERE address = $1 AND total_supply <= $3 - $2`, l.meta.Address, amount, domain.MaxAmount)
		if err != nil {
			return overflow(err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("mint %d: %w", amount, domain.ErrAmountOverflow)
		}
		return l.ops(tx).credit(ctx, to, amount)
	})
}

// tokenOps performs token reads and movements through q. Inside a
// campaign Update q is the campaign's transaction, so token movements
// commit or roll back with the ledger.
type tokenOps struct {
	q    querier
	addr domain.Address
}

var _ port.Token = tokenOps{}

func (o tokenOps) Address() domain.Address { return o.addr }

func (o tokenOps) Decimals() uint8 { return domain.TokenDecimals }

func (o tokenOps) BalanceOf(ctx context.Context, owner domain.Address) (domain.Amount, error) {
	var amount domain.Amount
	err := o.q.QueryRow(ctx, `SELECT COALESCE(
    (SELECT amount FROM token_balances WHERE token = $1 AND holder = $2), 0)`, o.addr, owner).Scan(&amount)
	return amount, err
}

func (o tokenOps) Allowance(ctx context.Context, owner, spender domain.Address) (domain.Amount, error) {
	var amount domain.Amount
	err := o.q.QueryRow(ctx, `SELECT COALESCE(
    (SELECT amount FROM token_allowances WHERE token = $1 AND owner = $2 AND spender = $3), 0)`,
		o.addr, owner, spender).Scan(&amount)
	return amount, err
}

func (o tokenOps) Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error {
	if to.IsZero() {
		return domain.ErrInvalidAddress
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	tag, err := o.q.Exec(ctx, `UPDATE token_balances SET amount = amount - $3
WHERE token = $1 AND holder = $2 AND amount >= $3`, o.addr, from, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s needs %d", domain.ErrInsufficientBalance, from, amount)
	}
	return o.credit(ctx, to, amount)
}

func (o tokenOps) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount domain.Amount) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	tag, err := o.q.Exec(ctx, `UPDATE token_allowances SET amount = amount - $4
WHERE token = $1 AND owner = $2 AND spender = $3 AND amount >= $4`, o.addr, from, spender, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s for %s needs %d", domain.ErrInsufficientAllowance, from, spender, amount)
	}
	return o.Transfer(ctx, from, to, amount)
}

// credit adds amount to a balance. An upsert whose update is filtered out
// by the capacity check affects no rows.
func (o tokenOps) credit(ctx context.Context, to domain.Address, amount domain.Amount) error {
	tag, err := o.q.Exec(ctx, `INSERT INTO token_balances (token, holder, amount) VALUES ($1,$2,$3)
ON CONFLICT (token, holder) DO UPDATE SET amount = token_balances.amount + EXCLUDED.amount
WHERE token_balances.amount <= $4 - EXCLUDED.amount`,
		o.addr, to, amount, domain.MaxAmount)
	if err != nil {
		return overflow(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("credit %s: %w", to, domain.ErrAmountOverflow)
	}
	return nil
}
