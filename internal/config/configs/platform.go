package configs

import (
	"crowdfund/internal/core/domain"
)

// Platform holds the factory settings fixed at startup: the bound token,
// the platform fee and who receives it.
type Platform struct {
	TokenAddress string `env:"TOKEN_ADDRESS" envDefault:"0x1c7d4b196cb0c7b01d743fbc6116a902379c7238"`
	// TokenOwner receives the initial supply and may mint.
	TokenOwner       string `env:"TOKEN_OWNER" envDefault:"0x00000000000000000000000000000000000000f0"`
	FeeBps           int64  `env:"FEE_BPS" envDefault:"250"`
	FeeRecipient     string `env:"FEE_RECIPIENT" envDefault:"0x00000000000000000000000000000000000000fe"`
	DefaultAuthority string `env:"DEFAULT_WITHDRAW_AUTHORITY" envDefault:"beneficiary"`
}

// Settings parses and validates the platform section.
func (c Platform) Settings() (domain.FactorySettings, error) {
	token, err := domain.ParseAddress(c.TokenAddress)
	if err != nil {
		return domain.FactorySettings{}, domain.ErrInvalidTokenAddress
	}
	recipient, err := domain.ParseAddress(c.FeeRecipient)
	if err != nil {
		return domain.FactorySettings{}, domain.ErrInvalidFeeRecipient
	}
	authority, err := domain.ParseWithdrawAuthority(c.DefaultAuthority)
	if err != nil {
		return domain.FactorySettings{}, err
	}
	s := domain.FactorySettings{
		Token:            token,
		FeeBps:           c.FeeBps,
		FeeRecipient:     recipient,
		DefaultAuthority: authority,
	}
	return s, s.Validate()
}

// Owner parses TokenOwner.
func (c Platform) Owner() (domain.Address, error) {
	return domain.ParseAddress(c.TokenOwner)
}
