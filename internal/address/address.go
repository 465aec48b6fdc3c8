// Package address classifies wallet addresses and private keys by their textual form
package address

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Kind is the address class
type Kind int

const (
	Transparent Kind = iota
	Shielded
)

func (k Kind) String() string {
	switch k {
	case Shielded:
		return "Z (Private)"
	default:
		return "T (Transparent)"
	}
}

// minShieldedLength is the length above which a "z" prefixed string is a shielded address
const minShieldedLength = 40

// Classify returns the kind of addr. Anything that is not a shielded address is
// treated as transparent, validity is left to the daemon.
func Classify(addr string) Kind {
	if IsShielded(addr) {
		return Shielded
	}
	return Transparent
}

// IsShielded reports whether addr is a z-address
func IsShielded(addr string) bool {
	return strings.HasPrefix(addr, "z") && len(addr) > minShieldedLength
}

var (
	ErrEmptyKey        = errors.New("private key is empty")
	ErrInvalidChecksum = errors.New("private key is not valid base58check")
)

// KeyKind returns the address kind a private key belongs to.
// Shielded spending keys are either legacy "SK..." keys or sapling extended keys.
func KeyKind(key string) Kind {
	if strings.HasPrefix(key, "SK") || strings.HasPrefix(key, "secret-extended-key") {
		return Shielded
	}
	return Transparent
}

// CheckKey performs a format check on a private key before it is sent to the daemon.
// Transparent keys are WIF encoded and must pass base58check.
func CheckKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	if KeyKind(key) == Shielded {
		return nil
	}
	if _, _, err := base58.CheckDecode(key); err != nil {
		return ErrInvalidChecksum
	}
	return nil
}

// CheckTransparent verifies the base58check encoding of a transparent address
func CheckTransparent(addr string) bool {
	_, _, err := base58.CheckDecode(addr)
	return err == nil
}
