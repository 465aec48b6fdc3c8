package walletops

import (
	"context"
	"errors"
	"fmt"

	"github.com/setavenger/zclwallet-desktop/internal/address"
	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

var (
	// ErrUnlockFailed wraps the daemon error of a rejected unlock
	ErrUnlockFailed = errors.New("failed to unlock wallet")
	// ErrRelockFailed means the wallet may still be unlocked
	ErrRelockFailed = errors.New("failed to lock wallet again")

	errEncryptionQuery = errors.New("failed to query wallet encryption")
)

// withUnlocked runs fn with the wallet unlocked by password. walletlock is
// issued on every exit path once an unlock was attempted, including a
// rejected unlock and a panic in fn.
func (c *Coordinator) withUnlocked(ctx context.Context, password string, fn func() error) (err error) {
	defer func() {
		// the relock must go out even if ctx was cancelled meanwhile
		if lockErr := c.service.Lock(context.WithoutCancel(ctx)); lockErr != nil {
			logging.L.Err(lockErr).Msg("failed to relock wallet")
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrRelockFailed, lockErr))
		}
	}()

	if err := c.service.Unlock(ctx, password); err != nil {
		return fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}
	return fn()
}

// withSecretAccess runs fn directly on an unencrypted wallet and inside
// withUnlocked on an encrypted one. ok is false if the user cancelled the
// password prompt, in which case no service call was made.
func (c *Coordinator) withSecretAccess(ctx context.Context, fn func() error) (ok bool, err error) {
	encrypted, err := c.service.IsEncrypted(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errEncryptionQuery, err)
	}
	if !encrypted {
		return true, c.call(fn)
	}

	password, ok := c.prompt.Password("Enter Wallet Password")
	if !ok {
		return false, nil
	}
	return true, c.call(func() error {
		return c.withUnlocked(ctx, password, fn)
	})
}

// secretAccessFailed reports a failure of withSecretAccess.
// A failed relock gets its own dialog since the wallet may be left unlocked.
func (c *Coordinator) secretAccessFailed(title, intro string, err error) {
	switch {
	case errors.Is(err, ErrRelockFailed):
		c.callFailed(
			"Wallet May Still Be Unlocked",
			"The wallet could not be locked again after reading key material!\n"+
				"Lock it manually or restart zcld.",
			err,
		)
	case errors.Is(err, ErrUnlockFailed):
		c.callFailed("Error Unlocking Wallet", "The wallet could not be unlocked.", err)
	default:
		c.callFailed(title, intro, err)
	}
}

// ShowPrivateKey shows the private key of the address selected in the
// addresses view and copies it to the clipboard.
func (c *Coordinator) ShowPrivateKey(ctx context.Context) {
	c.run("show private key", func() error {
		if !c.addresses.IsActive() {
			c.prompt.Inform(
				"Select an Address",
				"Please select an address in the \"My Addresses\" tab to view its private key",
			)
			c.addresses.Activate()
			return nil
		}

		addr := c.addresses.SelectedAddress()
		if addr == "" {
			c.prompt.Inform(
				"Select an Address",
				"Please select an address from the table to view its private key",
			)
			return nil
		}
		kind := address.Classify(addr)

		var key string
		ok, err := c.withSecretAccess(ctx, func() (err error) {
			key, err = c.service.SecretKey(ctx, addr)
			return err
		})
		if errors.Is(err, errEncryptionQuery) {
			return err
		}
		if err != nil {
			c.secretAccessFailed(
				"Error Reading Private Key",
				"An unexpected error occurred while reading the private key!",
				err,
			)
			return nil
		}
		if !ok {
			return nil
		}

		c.clipboard.SetText(key)
		c.prompt.Inform(
			"Private Key Info",
			fmt.Sprintf("%s address:\n%s\nhas private key:\n%s\n\n"+
				"The private key has also been copied to the clipboard.", kind, addr, key),
		)
		return nil
	})
}

// ImportSinglePrivateKey asks for one private key and imports it
func (c *Coordinator) ImportSinglePrivateKey(ctx context.Context) {
	c.run("import single private key", func() error {
		key, rescan, ok := c.prompt.PrivateKey("Import Private Key")
		if !ok {
			return nil
		}
		if err := address.CheckKey(key); err != nil {
			if errors.Is(err, address.ErrEmptyKey) {
				return nil
			}
			c.prompt.Inform(
				"Invalid Private Key",
				"The key entered is not a valid transparent (WIF) or shielded private key.",
			)
			return nil
		}

		ok, err := c.withSecretAccess(ctx, func() error {
			return c.service.ImportPrivateKey(ctx, key, rescan)
		})
		if errors.Is(err, errEncryptionQuery) {
			return err
		}
		if err != nil {
			c.secretAccessFailed(
				"Error Importing Private Key",
				"An unexpected error occurred while importing the private key!",
				err,
			)
			return nil
		}
		if !ok {
			return nil
		}

		msg := "The private key has been imported successfully."
		if rescan {
			msg += "\nThe wallet is rescanning the blockchain, balances may take a while to appear."
		}
		c.prompt.Inform("Private Key Imported", msg)
		return nil
	})
}
