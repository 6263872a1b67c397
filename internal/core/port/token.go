package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// Token is the fungible asset every campaign is denominated in. Amounts are
// base units; transfers either fully happen or return an error.
type Token interface {
	Address() domain.Address
	Decimals() uint8
	BalanceOf(ctx context.Context, owner domain.Address) (domain.Amount, error)
	Allowance(ctx context.Context, owner, spender domain.Address) (domain.Amount, error)
	// Transfer moves amount out of from's own balance.
	Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error
	// TransferFrom moves amount from from to to, spending spender's allowance.
	TransferFrom(ctx context.Context, spender, from, to domain.Address, amount domain.Amount) error
}

// TokenMetadata describes the bound token.
type TokenMetadata struct {
	Address  domain.Address
	Name     string
	Symbol   string
	Decimals uint8
	Owner    domain.Address
}

// TokenLedger is the full surface of the development token: the Token
// interface plus allowance management and unrestricted minting for test
// environments.
type TokenLedger interface {
	Token
	Metadata() TokenMetadata
	TotalSupply(ctx context.Context) (domain.Amount, error)
	Approve(ctx context.Context, owner, spender domain.Address, amount domain.Amount) error
	// Mint is restricted to the token owner.
	Mint(ctx context.Context, caller, to domain.Address, amount domain.Amount) error
	// Faucet mints to anyone; there is no cooldown.
	Faucet(ctx context.Context, to domain.Address, amount domain.Amount) error
	// FaucetCooldown always reports zero.
	FaucetCooldown(ctx context.Context, addr domain.Address) (time.Duration, error)
}
