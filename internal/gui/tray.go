package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// TrayManager keeps the wallet reachable from the system tray while the
// window is hidden
type TrayManager struct {
	window  fyne.Window
	gui     *MainGUI
	visible bool
}

// NewTrayManager installs the tray menu. Without desktop support the window
// closes normally.
func NewTrayManager(app fyne.App, window fyne.Window, gui *MainGUI) *TrayManager {
	tm := &TrayManager{window: window, gui: gui, visible: true}

	desk, ok := app.(desktop.App)
	if !ok {
		return tm
	}

	window.SetCloseIntercept(tm.hide)
	desk.SetSystemTrayMenu(fyne.NewMenu("ZCL Wallet",
		fyne.NewMenuItem("Show/Hide", tm.toggle),
		fyne.NewMenuItem("Quit", gui.Exit),
	))
	return tm
}

func (tm *TrayManager) toggle() {
	if !tm.visible {
		tm.window.Show()
		tm.window.RequestFocus()
		tm.visible = true
		return
	}
	tm.hide()
}

func (tm *TrayManager) hide() {
	tm.window.Hide()
	tm.visible = false
}
