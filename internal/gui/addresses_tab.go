package gui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/zclwallet-desktop/internal/address"
	"github.com/setavenger/zclwallet-desktop/internal/logging"
	"github.com/setavenger/zclwallet-desktop/internal/rpc"
)

// AddressRow is one address for display
type AddressRow struct {
	Address string
	Kind    address.Kind
	Balance string
}

// addressesTab lists the wallet addresses and provides the selection for
// the private key operations
type addressesTab struct {
	tabItem *container.TabItem
	tabs    *container.AppTabs
	table   *widget.Table

	mu       sync.RWMutex
	rows     []AddressRow
	selected string
}

func newAddressesTab() *addressesTab {
	t := &addressesTab{}

	t.table = widget.NewTable(
		func() (int, int) {
			t.mu.RLock()
			defer t.mu.RUnlock()
			return len(t.rows), 3 // Balance, Kind, Address
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("wide content")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			t.mu.RLock()
			defer t.mu.RUnlock()
			if id.Row >= len(t.rows) {
				label.SetText("")
				return
			}
			row := t.rows[id.Row]
			label.TextStyle.Monospace = id.Col == 2
			switch id.Col {
			case 0:
				label.SetText(row.Balance)
			case 1:
				label.SetText(row.Kind.String())
			case 2:
				label.SetText(row.Address)
			}
		},
	)
	t.table.SetColumnWidth(0, 140)
	t.table.SetColumnWidth(1, 140)
	t.table.SetColumnWidth(2, 620)

	t.table.ShowHeaderRow = true
	t.table.CreateHeader = func() fyne.CanvasObject {
		headerLabel := widget.NewLabel("Header")
		headerLabel.TextStyle = fyne.TextStyle{Bold: true}
		return headerLabel
	}
	t.table.UpdateHeader = func(id widget.TableCellID, template fyne.CanvasObject) {
		label := template.(*widget.Label)
		switch id.Col {
		case 0:
			label.SetText("Balance")
		case 1:
			label.SetText("Type")
		case 2:
			label.SetText("Address")
		}
	}

	t.table.OnSelected = func(id widget.TableCellID) {
		t.mu.Lock()
		defer t.mu.Unlock()
		if id.Row >= 0 && id.Row < len(t.rows) {
			t.selected = t.rows[id.Row].Address
		}
	}
	t.table.OnUnselected = func(widget.TableCellID) {
		t.mu.Lock()
		t.selected = ""
		t.mu.Unlock()
	}

	t.tabItem = container.NewTabItem("My Addresses", t.table)
	return t
}

// setRows replaces the table content, keeping the selection if the address still exists
func (t *addressesTab) setRows(rows []AddressRow) {
	t.mu.Lock()
	t.rows = rows
	found := false
	for _, r := range rows {
		if r.Address == t.selected {
			found = true
			break
		}
	}
	if !found {
		t.selected = ""
	}
	t.mu.Unlock()

	t.table.Refresh()
}

func (t *addressesTab) IsActive() bool {
	return t.tabs != nil && t.tabs.Selected() == t.tabItem
}

func (t *addressesTab) Activate() {
	if t.tabs != nil {
		t.tabs.Select(t.tabItem)
	}
}

func (t *addressesTab) SelectedAddress() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selected
}

// loadAddressRows fetches all wallet addresses with their balances
func loadAddressRows(ctx context.Context, wallet *rpc.Wallet) ([]AddressRow, error) {
	addrs, err := wallet.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]AddressRow, 0, len(addrs))
	for _, a := range addrs {
		balance, err := wallet.AddressBalance(ctx, a)
		if err != nil {
			logging.L.Warn().Err(err).Str("address", a).Msg("failed to get balance")
			balance = "?"
		}
		rows = append(rows, AddressRow{
			Address: a,
			Kind:    address.Classify(a),
			Balance: balance,
		})
	}
	return rows, nil
}
