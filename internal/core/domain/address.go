package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Address identifies an account on the token ledger: donors, creators,
// beneficiaries, the fee recipient and every campaign's custody account.
// It is stored in canonical form: "0x" followed by 40 lower-case hex digits.
type Address string

// ZeroAddress is never a valid owner of funds.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// ParseAddress validates s and returns its canonical form.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if len(s) != 42 || !(strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if _, err := hex.DecodeString(s[2:]); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address("0x" + strings.ToLower(s[2:])), nil
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether a is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}

// NewCampaignAddress derives a fresh custody address from a random UUID.
// Two UUIDs never collide, so neither do campaign references.
func NewCampaignAddress(id uuid.UUID) Address {
	var buf [20]byte
	copy(buf[:16], id[:])
	// 0xca prefix on the tail keeps campaign accounts recognisable in logs.
	buf[16] = 0xca
	buf[17] = id[0] ^ id[15]
	buf[18] = id[1] ^ id[14]
	buf[19] = id[2] ^ id[13]
	return Address("0x" + hex.EncodeToString(buf[:]))
}
