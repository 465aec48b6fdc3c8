// Package gui is the fyne front end of the wallet.
// Files:
// - main_gui.go: core GUI structure, menu and periodic updates
// - overview_tab.go: daemon and backup status
// - addresses_tab.go: "My Addresses" table, source of the private key selection
// - dialogs.go: blocking dialog adapter used by wallet operations
// - busy.go: wait overlay shown during daemon calls
// - tray.go: system tray menu
package gui
