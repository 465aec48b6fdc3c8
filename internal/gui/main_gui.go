package gui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/setavenger/zclwallet-desktop/internal/backup"
	"github.com/setavenger/zclwallet-desktop/internal/configs"
	"github.com/setavenger/zclwallet-desktop/internal/logging"
	"github.com/setavenger/zclwallet-desktop/internal/rpc"
	"github.com/setavenger/zclwallet-desktop/internal/walletops"
)

// status polling gives up on a slow daemon, wallet operations never time out
const refreshTimeout = 20 * time.Second

// MainGUI represents the main GUI application
type MainGUI struct {
	app     fyne.App
	window  fyne.Window
	cfg     *configs.Config
	wallet  *rpc.Wallet
	tracker *backup.Tracker
	ops     *walletops.Coordinator
	dialogs *Dialogs

	content *fyne.Container
	tabs    *container.AppTabs

	overview  *overviewTab
	addresses *addressesTab

	updateTicker *time.Ticker
	stopOnce     sync.Once
	stopUpdates  chan struct{}
}

// NewMainGUI creates a new main GUI instance
func NewMainGUI(app fyne.App, window fyne.Window, cfg *configs.Config, wallet *rpc.Wallet, tracker *backup.Tracker) *MainGUI {
	g := &MainGUI{
		app:         app,
		window:      window,
		cfg:         cfg,
		wallet:      wallet,
		tracker:     tracker,
		dialogs:     NewDialogs(window, cfg.ExportDir),
		stopUpdates: make(chan struct{}),
	}

	g.createContent()

	g.ops = walletops.NewCoordinator(walletops.Collaborators{
		Service:    wallet,
		Tracker:    tracker,
		Prompt:     g.dialogs,
		Clipboard:  &clipboard{window: window, clearAfter: cfg.ClipboardClear},
		Addresses:  g.addresses,
		Exit:       g,
		Busy:       newBusyOverlay(window),
		Background: g,
		Reporter:   g,
	}, walletops.NewBackupDirectoryWarning(cfg.BackupWarningFlagPath(), cfg.ExportDir), configs.UserHomeDir())

	window.SetMainMenu(g.createMainMenu())

	g.startPeriodicUpdates()
	return g
}

// GetContent returns the main content container
func (g *MainGUI) GetContent() *fyne.Container {
	return g.content
}

// Cleanup cleans up resources when the GUI is destroyed
func (g *MainGUI) Cleanup() {
	g.StopBackgroundWork()
}

func (g *MainGUI) createContent() {
	g.overview = newOverviewTab()
	g.addresses = newAddressesTab()

	g.tabs = container.NewAppTabs(
		container.NewTabItem("Overview", g.overview.content),
		g.addresses.tabItem,
	)
	g.addresses.tabs = g.tabs

	g.content = container.NewStack(g.tabs)
}

func (g *MainGUI) createMainMenu() *fyne.MainMenu {
	// operations block on dialogs, so they must not run on the UI goroutine
	async := func(op func(context.Context)) func() {
		return func() { go op(context.Background()) }
	}

	walletMenu := fyne.NewMenu("Wallet",
		fyne.NewMenuItem("Backup...", async(g.ops.BackupWallet)),
		fyne.NewMenuItem("Encrypt...", async(g.ops.EncryptWallet)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Private Keys...", async(g.ops.ExportWalletPrivateKeys)),
		fyne.NewMenuItem("Import Private Keys...", async(g.ops.ImportWalletPrivateKeys)),
		fyne.NewMenuItem("Show Private Key...", async(g.ops.ShowPrivateKey)),
		fyne.NewMenuItem("Import One Private Key...", async(g.ops.ImportSinglePrivateKey)),
	)
	return fyne.NewMainMenu(walletMenu)
}

// updateWalletInfo refreshes the overview and the address table from the daemon
func (g *MainGUI) updateWalletInfo() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	status := walletStatus{}
	status.encrypted, status.err = g.wallet.IsEncrypted(ctx)

	if last, ok, err := g.tracker.LastBackup(); err != nil {
		logging.L.Err(err).Msg("failed to read last backup")
	} else if ok {
		status.lastBackup = last.Time
	}
	if history, err := g.tracker.History(); err != nil {
		logging.L.Err(err).Msg("failed to read backup history")
	} else {
		status.backups = len(history)
	}
	remind, err := g.tracker.NeedsReminder(g.cfg.BackupReminder)
	if err != nil {
		logging.L.Err(err).Msg("failed to evaluate backup reminder")
	}
	status.remind = remind
	g.overview.update(status)

	if status.err != nil {
		return
	}

	rows, err := loadAddressRows(ctx, g.wallet)
	if err != nil {
		logging.L.Err(err).Msg("failed to refresh addresses")
		return
	}
	g.addresses.setRows(rows)
}

// startPeriodicUpdates starts periodic updates of wallet info
func (g *MainGUI) startPeriodicUpdates() {
	interval := g.cfg.RefreshInterval
	if interval <= 0 {
		interval = configs.DefaultRefreshIntervalSeconds * time.Second
	}
	g.updateTicker = time.NewTicker(interval)

	go func() {
		g.updateWalletInfo()
		for {
			select {
			case <-g.stopUpdates:
				return
			case <-g.updateTicker.C:
				g.updateWalletInfo()
			}
		}
	}()
}

// StopBackgroundWork stops the periodic daemon polling, zcld goes down
// after encryption.
func (g *MainGUI) StopBackgroundWork() {
	g.stopOnce.Do(func() {
		if g.updateTicker != nil {
			g.updateTicker.Stop()
		}
		close(g.stopUpdates)
	})
}

// Exit quits the application
func (g *MainGUI) Exit() {
	g.StopBackgroundWork()
	g.app.Quit()
}

// ReportError shows errors no wallet operation has a dedicated dialog for
func (g *MainGUI) ReportError(err error) {
	logging.L.Err(err).Msg("unexpected error")
	dialog.ShowError(fmt.Errorf("an unexpected error occurred: %w", err), g.window)
}
