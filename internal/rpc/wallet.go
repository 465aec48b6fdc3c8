package rpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/setavenger/zclwallet-desktop/internal/address"
)

// Wallet implements the wallet maintenance calls on top of Client
type Wallet struct {
	client        *Client
	unlockTimeout time.Duration
}

// NewWallet wraps client. unlockTimeout is passed to walletpassphrase.
func NewWallet(client *Client, unlockTimeout time.Duration) *Wallet {
	return &Wallet{client: client, unlockTimeout: unlockTimeout}
}

// IsEncrypted reports whether the wallet is encrypted.
// getwalletinfo only carries unlocked_until for encrypted wallets.
func (w *Wallet) IsEncrypted(ctx context.Context) (bool, error) {
	info, err := w.client.Call(ctx, "getwalletinfo")
	if err != nil {
		return false, err
	}
	return info.Get("unlocked_until").Exists(), nil
}

// Encrypt encrypts the wallet. zcld shuts itself down afterwards.
func (w *Wallet) Encrypt(ctx context.Context, password string) error {
	_, err := w.client.Call(ctx, "encryptwallet", password)
	return err
}

func (w *Wallet) Unlock(ctx context.Context, password string) error {
	_, err := w.client.Call(ctx, "walletpassphrase", password, int64(w.unlockTimeout/time.Second))
	return err
}

// Lock locks the wallet. Locking an unencrypted wallet is not an error.
func (w *Wallet) Lock(ctx context.Context) error {
	_, err := w.client.Call(ctx, "walletlock")
	if IsCode(err, ErrCodeWalletWrongEncState) {
		return nil
	}
	return err
}

// Backup copies wallet.dat to filename inside the daemon's export directory
// and returns the full path reported by the daemon.
func (w *Wallet) Backup(ctx context.Context, filename string) (string, error) {
	return w.callForPath(ctx, "backupwallet", filename)
}

// ExportKeys writes all private keys in plain text to filename inside the export directory
func (w *Wallet) ExportKeys(ctx context.Context, filename string) (string, error) {
	return w.callForPath(ctx, "z_exportwallet", filename)
}

// ImportKeys imports a file written by ExportKeys. Blocks until the daemon has rescanned.
func (w *Wallet) ImportKeys(ctx context.Context, path string) error {
	_, err := w.client.Call(ctx, "z_importwallet", path)
	return err
}

// SecretKey returns the private key of addr exactly as the daemon reports it
func (w *Wallet) SecretKey(ctx context.Context, addr string) (string, error) {
	method := "dumpprivkey"
	if address.Classify(addr) == address.Shielded {
		method = "z_exportkey"
	}
	res, err := w.client.Call(ctx, method, addr)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// ImportPrivateKey imports a single transparent or shielded key
func (w *Wallet) ImportPrivateKey(ctx context.Context, key string, rescan bool) error {
	key = strings.TrimSpace(key)
	var err error
	if address.KeyKind(key) == address.Shielded {
		_, err = w.client.Call(ctx, "z_importkey", key, rescanParam(rescan))
	} else {
		_, err = w.client.Call(ctx, "importprivkey", key, "", rescan)
	}
	return err
}

// z_importkey takes "yes", "no" or "whenkeyisnew"
func rescanParam(rescan bool) string {
	if rescan {
		return "yes"
	}
	return "no"
}

// ListAddresses returns the transparent addresses of the default account followed by all z-addresses
func (w *Wallet) ListAddresses(ctx context.Context) ([]string, error) {
	var addrs []string

	transparent, err := w.client.Call(ctx, "getaddressesbyaccount", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list transparent addresses: %w", err)
	}
	for _, a := range transparent.Array() {
		addrs = append(addrs, a.String())
	}

	shielded, err := w.client.Call(ctx, "z_listaddresses")
	if err != nil {
		return nil, fmt.Errorf("failed to list shielded addresses: %w", err)
	}
	for _, a := range shielded.Array() {
		addrs = append(addrs, a.String())
	}
	return addrs, nil
}

// AddressBalance returns the confirmed balance of addr as a decimal string
func (w *Wallet) AddressBalance(ctx context.Context, addr string) (string, error) {
	res, err := w.client.Call(ctx, "z_getbalance", addr)
	if err != nil {
		return "", err
	}
	return res.Raw, nil
}

func (w *Wallet) callForPath(ctx context.Context, method, filename string) (string, error) {
	res, err := w.client.Call(ctx, method, filename)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.String()), nil
}
