package domain

import "errors"

// Validation errors.
var (
	ErrEmptyTitle               = errors.New("title cannot be empty")
	ErrEmptyDescription         = errors.New("description cannot be empty")
	ErrInvalidGoal              = errors.New("goal amount must be greater than 0")
	ErrInvalidDuration          = errors.New("invalid duration")
	ErrInvalidBeneficiary       = errors.New("invalid beneficiary address")
	ErrInvalidWithdrawAuthority = errors.New("invalid withdraw authority")
	ErrInvalidTokenAddress      = errors.New("invalid token address")
	ErrInvalidFeeRecipient      = errors.New("invalid fee recipient address")
	ErrFeeTooHigh               = errors.New("fee exceeds maximum")
	ErrInvalidAmount            = errors.New("amount must be greater than 0")
	ErrInvalidAddress           = errors.New("invalid address")
	ErrInvalidPage              = errors.New("invalid page")
)

// Authorization errors.
var (
	ErrNotCreator      = errors.New("only creator can deactivate")
	ErrNotWithdrawer   = errors.New("only beneficiary can withdraw")
	ErrNotTokenOwner   = errors.New("caller is not the token owner")
	ErrUnauthenticated = errors.New("caller identity required")
)

// State errors.
var (
	ErrDeadlinePassed    = errors.New("campaign deadline passed")
	ErrCampaignNotActive = errors.New("campaign is not active")
	ErrAlreadyInactive   = errors.New("campaign already inactive")
	ErrStillActive       = errors.New("campaign still active")
	ErrAlreadyWithdrawn  = errors.New("campaign already withdrawn")
	ErrNothingToWithdraw = errors.New("no funds to distribute")
)

// Token errors.
var (
	ErrInsufficientBalance   = errors.New("insufficient token balance")
	ErrInsufficientAllowance = errors.New("insufficient token allowance")
	ErrInsufficientCustody   = errors.New("insufficient custodied balance")
	ErrAmountOverflow        = errors.New("amount exceeds ledger capacity")
)

// Lookup errors.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
)

// Kind groups errors by how a caller should react to them.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindState
	KindToken
	KindNotFound
)

var kinds = map[error]Kind{
	ErrEmptyTitle:               KindValidation,
	ErrEmptyDescription:         KindValidation,
	ErrInvalidGoal:              KindValidation,
	ErrInvalidDuration:          KindValidation,
	ErrInvalidBeneficiary:       KindValidation,
	ErrInvalidWithdrawAuthority: KindValidation,
	ErrInvalidTokenAddress:      KindValidation,
	ErrInvalidFeeRecipient:      KindValidation,
	ErrFeeTooHigh:               KindValidation,
	ErrInvalidAmount:            KindValidation,
	ErrInvalidAddress:           KindValidation,
	ErrInvalidPage:              KindValidation,

	ErrNotCreator:      KindAuthorization,
	ErrNotWithdrawer:   KindAuthorization,
	ErrNotTokenOwner:   KindAuthorization,
	ErrUnauthenticated: KindAuthorization,

	ErrDeadlinePassed:    KindState,
	ErrCampaignNotActive: KindState,
	ErrAlreadyInactive:   KindState,
	ErrStillActive:       KindState,
	ErrAlreadyWithdrawn:  KindState,
	ErrNothingToWithdraw: KindState,

	ErrInsufficientBalance:   KindToken,
	ErrInsufficientAllowance: KindToken,
	ErrInsufficientCustody:   KindToken,
	ErrAmountOverflow:        KindToken,

	ErrCampaignNotFound: KindNotFound,
}

// KindOf returns the kind of the first sentinel found in err's chain.
func KindOf(err error) Kind {
	for err != nil {
		if k, ok := kinds[err]; ok {
			return k
		}
		err = errors.Unwrap(err)
	}
	return KindUnknown
}
