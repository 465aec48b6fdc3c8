package walletops

import (
	"context"
	"fmt"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// EncryptWallet encrypts an unencrypted wallet with a new password.
// zcld stops itself after encrypting, so on success the application is terminated.
func (c *Coordinator) EncryptWallet(ctx context.Context) {
	c.run("encrypt wallet", func() error {
		encrypted, err := c.service.IsEncrypted(ctx)
		if err != nil {
			return fmt.Errorf("failed to query wallet encryption: %w", err)
		}
		if encrypted {
			c.prompt.Inform(
				"Wallet Is Already Encrypted",
				"The wallet.dat file being used is already encrypted. This\n"+
					"operation may be performed only on a wallet that is not\n"+
					"yet encrypted!",
			)
			return nil
		}

		password, ok := c.prompt.NewPassword("Encrypt Wallet")
		if !ok {
			return nil
		}

		err = c.call(func() error {
			if c.background != nil {
				c.background.StopBackgroundWork()
			}
			return c.service.Encrypt(ctx, password)
		})
		if err != nil {
			c.callFailed(
				"Error Encrypting Wallet",
				"An unexpected error occurred while encrypting the wallet!\n"+
					"It is recommended to stop and restart both zcld and the GUI wallet!\n",
				err,
			)
			return nil
		}

		if err := c.tracker.RecordKeypoolFlushed(); err != nil {
			logging.L.Err(err).Msg("failed to record keypool flush")
		}

		c.prompt.Inform(
			"Wallet Is Now Encrypted",
			"The wallet has been encrypted successfully and zcld has stopped.\n"+
				"The GUI wallet will be stopped as well. Please restart the program.\n"+
				"Additionally, the internal wallet keypool has been flushed. You need\n"+
				"to make a new backup.\n",
		)

		c.terminate()
		return nil
	})
}
