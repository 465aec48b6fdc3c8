package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/setavenger/zclwallet-desktop/internal/backup"
	"github.com/setavenger/zclwallet-desktop/internal/configs"
	"github.com/setavenger/zclwallet-desktop/internal/gui"
	"github.com/setavenger/zclwallet-desktop/internal/logging"
	"github.com/setavenger/zclwallet-desktop/internal/rpc"
)

var (
	dataDir string
	debug   bool
)

func init() {
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.StringVar(&dataDir, "datadir", "", "path to data directory for ZCL Wallet Desktop")
	pflag.Parse()

	if debug {
		logging.SetLogLevel(zerolog.DebugLevel)
	} else {
		logging.SetLogLevel(zerolog.InfoLevel)
	}
}

func main() {
	myApp := app.New()
	myApp.SetIcon(theme.AccountIcon())

	mainWindow := myApp.NewWindow("ZCL Wallet Desktop")
	mainWindow.Resize(fyne.NewSize(960, 600))
	mainWindow.CenterOnScreen()

	cfg, err := configs.Load(dataDir)
	if err != nil {
		logging.L.Err(err).Msg("failed to load config")
		showFatal(mainWindow, fmt.Errorf("failed to load configuration: %w", err))
		return
	}

	if err := logging.AttachFile(cfg.DataDir); err != nil {
		logging.L.Err(err).Msg("failed to open log file, logging to console only")
	}
	defer logging.Close()

	tracker, err := backup.Open(cfg.BackupDBPath())
	if err != nil {
		logging.L.Err(err).Msg("failed to open backup tracker")
		showFatal(mainWindow, err)
		return
	}
	defer tracker.Close()

	client := rpc.NewClient(cfg.RPCAddress(), cfg.RPCUser, cfg.RPCPassword)
	wallet := rpc.NewWallet(client, cfg.UnlockTimeout)

	mainGUI := gui.NewMainGUI(myApp, mainWindow, cfg, wallet, tracker)
	defer mainGUI.Cleanup()
	gui.NewTrayManager(myApp, mainWindow, mainGUI)

	mainWindow.SetContent(mainGUI.GetContent())

	logging.L.Info().Str("data_dir", cfg.DataDir).Str("rpc", cfg.RPCAddress()).Msg("starting")
	mainWindow.ShowAndRun()
}

// showFatal shows err and quits once the dialog is closed
func showFatal(window fyne.Window, err error) {
	d := dialog.NewError(err, window)
	d.SetOnClosed(window.Close)
	d.Show()
	window.ShowAndRun()
}
