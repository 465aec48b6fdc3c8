package walletops

import (
	"context"
	"fmt"
	"path/filepath"
)

// backupKind describes the dialogs of one of the two daemon side file writes
type backupKind struct {
	op           string
	chooserTitle string
	errorTitle   string
	errorIntro   string
	successTitle string
	successText  func(name, path string) string
	write        func(ctx context.Context, filename string) (string, error)
}

// BackupWallet copies wallet.dat into the daemon's export directory
func (c *Coordinator) BackupWallet(ctx context.Context) {
	c.writeBackup(ctx, backupKind{
		op:           "backup wallet",
		chooserTitle: "Back Up Wallet to File",
		errorTitle:   "Error Backing Up Wallet",
		errorIntro:   "An unexpected error occurred while backing up the wallet!",
		successTitle: "Successfully Backed Up Wallet",
		successText: func(name, path string) string {
			return fmt.Sprintf(
				"The wallet has been backed up successfully to file: %s\n"+
					"in the backup directory provided to zcld (-exportdir=<dir>).\n"+
					"Full path is: %s", name, path)
		},
		write: c.service.Backup,
	})
}

// ExportWalletPrivateKeys writes all private keys in plain text into the
// daemon's export directory
func (c *Coordinator) ExportWalletPrivateKeys(ctx context.Context) {
	c.writeBackup(ctx, backupKind{
		op:           "export private keys",
		chooserTitle: "Export Private Keys to File",
		errorTitle:   "Error Exporting Private Keys",
		errorIntro:   "An unexpected error occurred while exporting private keys!",
		successTitle: "Successfully Exported Private Keys",
		successText: func(name, path string) string {
			return fmt.Sprintf(
				"The wallet private keys have been successfully exported to file:\n%s\n"+
					"in the backup directory provided to zcld (-exportdir=<dir>).\n"+
					"Full path is: %s\n"+
					"You need to protect this file from unauthorized access. Anyone who\n"+
					"has access to the private keys can spend the Zclassic balance!", name, path)
		},
		write: c.service.ExportKeys,
	})
}

func (c *Coordinator) writeBackup(ctx context.Context, kind backupKind) {
	c.run(kind.op, func() error {
		if err := c.warning.Issue(c.prompt); err != nil {
			return err
		}

		dest, ok := c.prompt.SaveFile(kind.chooserTitle, c.homeDir)
		if !ok {
			return nil
		}
		// only the name is passed on, zcld decides the directory
		name := filepath.Base(dest)

		var path string
		err := c.call(func() (err error) {
			path, err = kind.write(ctx, name)
			return err
		})
		if err != nil {
			c.callFailed(kind.errorTitle, kind.errorIntro, err)
			return nil
		}

		c.recordBackup()
		c.prompt.Inform(kind.successTitle, kind.successText(name, path))
		return nil
	})
}

// ImportWalletPrivateKeys imports a key file written by ExportWalletPrivateKeys.
// The call blocks until the daemon has finished, which can take minutes.
func (c *Coordinator) ImportWalletPrivateKeys(ctx context.Context) {
	c.run("import private keys", func() error {
		proceed := c.prompt.Confirm(
			"Import Private Keys",
			"Importing private keys can be a slow operation. It may take\n"+
				"several minutes, during which the GUI will be non-responsive.\n"+
				"The data to import must be in the format used by\n"+
				"\"Wallet >> Export Private Keys\"\n\n"+
				"Continue?",
		)
		if !proceed {
			return nil
		}

		src, ok := c.prompt.OpenFile("Import Private Keys from File", c.homeDir)
		if !ok {
			return nil
		}
		path, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", src, err)
		}

		err = c.call(func() error {
			return c.service.ImportKeys(ctx, path)
		})
		if err != nil {
			c.callFailed(
				"Error Importing Private Keys",
				"An unexpected error occurred while importing private keys!",
				err,
			)
			return nil
		}

		c.prompt.Inform(
			"Successfully Imported Private Keys",
			"Wallet private keys have been successfully imported from location:\n"+path+"\n\n",
		)
		return nil
	})
}
