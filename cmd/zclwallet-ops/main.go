// zclwallet-ops runs the wallet maintenance operations from a terminal
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/setavenger/zclwallet-desktop/internal/backup"
	"github.com/setavenger/zclwallet-desktop/internal/configs"
	"github.com/setavenger/zclwallet-desktop/internal/logging"
	"github.com/setavenger/zclwallet-desktop/internal/rpc"
	"github.com/setavenger/zclwallet-desktop/internal/termui"
	"github.com/setavenger/zclwallet-desktop/internal/walletops"
)

var (
	dataDir     string
	debug       bool
	rpcHost     string
	rpcPort     int
	rpcUser     string
	rpcPassword string
)

const commandsHelp = `Commands:
  encrypt          encrypt the wallet (zcld stops afterwards)
  backup           back up wallet.dat into the zcld export directory
  export           export all private keys into the zcld export directory
  import           import private keys from an exported file
  showkey <addr>   show the private key of an address
  importkey        import a single private key`

func usage() {
	appName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n  %s [OPTIONS] <command> [args]\n\n%s\n\nOptions:\n", appName, commandsHelp)
	pflag.PrintDefaults()
}

func main() {
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.StringVar(&dataDir, "datadir", "", "path to data directory")
	pflag.StringVar(&rpcHost, "rpc-host", "", "zcld RPC host (overrides config)")
	pflag.IntVar(&rpcPort, "rpc-port", 0, "zcld RPC port (overrides config)")
	pflag.StringVar(&rpcUser, "rpc-user", "", "zcld RPC user (overrides config)")
	pflag.StringVar(&rpcPassword, "rpc-password", "", "zcld RPC password (overrides config)")
	pflag.Usage = usage
	pflag.Parse()

	if debug {
		logging.SetLogLevel(zerolog.DebugLevel)
	} else {
		logging.SetLogLevel(zerolog.WarnLevel)
	}

	args := pflag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	os.Exit(run(args[0], args[1:]))
}

func run(command string, args []string) int {
	cfg, err := configs.Load(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	applyFlagOverrides(cfg)

	if err := logging.AttachFile(cfg.DataDir); err != nil {
		logging.L.Warn().Err(err).Msg("failed to open log file")
	}
	defer logging.Close()

	tracker, err := backup.Open(cfg.BackupDBPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer tracker.Close()

	var selected termui.Address
	if command == "showkey" {
		if len(args) != 1 {
			usage()
			return 1
		}
		selected, err = termui.ParseAddress(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	client := rpc.NewClient(cfg.RPCAddress(), cfg.RPCUser, cfg.RPCPassword)
	session := &termui.Session{}
	clip := termui.NewClipboard(cfg.ClipboardClear)

	ops := walletops.NewCoordinator(walletops.Collaborators{
		Service:   rpc.NewWallet(client, cfg.UnlockTimeout),
		Tracker:   tracker,
		Prompt:    session.Watch(termui.NewPrompt()),
		Clipboard: clip,
		Addresses: selected,
		Exit:      session,
		Busy:      termui.Busy{},
		Reporter:  session,
	}, walletops.NewBackupDirectoryWarning(cfg.BackupWarningFlagPath(), cfg.ExportDir), configs.UserHomeDir())

	ctx := context.Background()
	switch command {
	case "encrypt":
		ops.EncryptWallet(ctx)
	case "backup":
		ops.BackupWallet(ctx)
	case "export":
		ops.ExportWalletPrivateKeys(ctx)
	case "import":
		ops.ImportWalletPrivateKeys(ctx)
	case "showkey":
		ops.ShowPrivateKey(ctx)
		if cfg.ClipboardClear > 0 {
			fmt.Fprintf(os.Stderr, "clipboard is cleared in %s\n", cfg.ClipboardClear)
		}
		clip.Wait()
	case "importkey":
		ops.ImportSinglePrivateKey(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unrecognized command '%s'\n\n", command)
		usage()
		return 1
	}

	if session.Terminated() {
		fmt.Fprintln(os.Stderr, "zcld has stopped, start it again before running further commands")
	}
	if session.Failed() {
		return 1
	}
	return 0
}

func applyFlagOverrides(cfg *configs.Config) {
	if rpcHost != "" {
		cfg.RPCHost = rpcHost
	}
	if rpcPort != 0 {
		cfg.RPCPort = rpcPort
	}
	if rpcUser != "" {
		cfg.RPCUser = rpcUser
	}
	if rpcPassword != "" {
		cfg.RPCPassword = rpcPassword
	}
}
