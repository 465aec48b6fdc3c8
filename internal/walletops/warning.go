package walletops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

const (
	optionDontShowAgain = 0
	optionOK            = 1
)

// BackupDirectoryWarning explains the -exportdir requirement once, until the
// user opts out. Its only state is whether the flag file exists.
type BackupDirectoryWarning struct {
	flagPath  string
	exportDir string
}

// NewBackupDirectoryWarning creates the warning. exportDir is the directory
// zcld is started with and only appears in the text.
func NewBackupDirectoryWarning(flagPath, exportDir string) *BackupDirectoryWarning {
	return &BackupDirectoryWarning{flagPath: flagPath, exportDir: exportDir}
}

// Issue shows the warning unless the flag file exists. Choosing
// "Don't show this again" creates the flag file.
func (w *BackupDirectoryWarning) Issue(prompt UserPrompt) error {
	_, err := os.Stat(w.flagPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check backup warning flag: %w", err)
	}

	reply := prompt.Options(
		"Wallet Backup Directory Info",
		w.message(),
		[]string{"Don't show this again", "OK"},
		optionOK,
	)
	if reply != optionDontShowAgain {
		return nil
	}

	f, err := os.OpenFile(w.flagPath, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create backup warning flag: %w", err)
	}
	logging.L.Debug().Str("path", w.flagPath).Msg("backup directory warning disabled")
	return f.Close()
}

func (w *BackupDirectoryWarning) message() string {
	return fmt.Sprintf(
		"The Zclassic Full-Node Desktop Wallet automatically starts zcld with the \"-exportdir=%s\" option.\n"+
			"By default, this is the user home directory.\n"+
			"For security reasons, the wallet may only export private keys if\n"+
			"the zcld parameter \"-exportdir=<dir>\" is set. If you started zcld\n"+
			"manually, be sure to do this. If this parameter isn't provided to zcld, the\n"+
			"process will fail with a security check error. The filename needs to consist of\n"+
			"only alphanumeric characters (e.g. dot is not allowed).\n",
		w.exportDir,
	)
}
