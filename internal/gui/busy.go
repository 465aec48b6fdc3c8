package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// busyOverlay is a modal progress dialog shown while zcld works.
// fyne has no wait cursor, the modal also blocks input like one.
type busyOverlay struct {
	window fyne.Window
}

func newBusyOverlay(window fyne.Window) *busyOverlay {
	return &busyOverlay{window: window}
}

func (b *busyOverlay) Busy() func() {
	content := container.NewVBox(
		widget.NewLabel("Waiting for zcld..."),
		widget.NewProgressBarInfinite(),
	)
	dlg := dialog.NewCustomWithoutButtons("Please Wait", content, b.window)
	dlg.Show()

	var once sync.Once
	return func() {
		once.Do(dlg.Hide)
	}
}
