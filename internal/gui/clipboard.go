package gui

import (
	"time"

	"fyne.io/fyne/v2"
)

// clipboard copies into the system clipboard and wipes secrets after clearAfter
type clipboard struct {
	window     fyne.Window
	clearAfter time.Duration
}

func (c *clipboard) SetText(text string) {
	cb := c.window.Clipboard()
	cb.SetContent(text)

	if c.clearAfter <= 0 {
		return
	}
	time.AfterFunc(c.clearAfter, func() {
		// leave it alone if the user copied something else meanwhile
		if cb.Content() == text {
			cb.SetContent("")
		}
	})
}
