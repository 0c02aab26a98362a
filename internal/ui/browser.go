package ui

import (
	"fmt"
	"strings"

	"frg/internal/domain"
	"frg/internal/layout"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GroupBrowser displays discovered test groups in an interactive TUI
type GroupBrowser struct{}

var _ Viewer = (*GroupBrowser)(nil)

// NewGroupBrowser creates a new GroupBrowser
func NewGroupBrowser() *GroupBrowser {
	return &GroupBrowser{}
}

// browserEntry is one row of the group list
type browserEntry struct {
	Bucket  domain.Bucket
	Name    string
	Sources []string
	Target  string
	Export  string
	Import  string
}

// browserEntries flattens d into list rows, bucket by bucket in target order
func browserEntries(d *domain.Discovery, l *layout.Layout) []browserEntry {
	var entries []browserEntry
	for _, b := range scannedBuckets(l) {
		t, _ := l.TargetFor(b)
		set := d.Set(b)
		for _, name := range set.Names() {
			sources := set.Sources(name)
			for i, src := range sources {
				sources[i] = relativeTo(d.Root, src)
			}
			entries = append(entries, browserEntry{
				Bucket:  b,
				Name:    name,
				Sources: sources,
				Target:  t.Filename,
				Export:  t.Framework.Export,
				Import:  t.Framework.Import,
			})
		}
	}
	return entries
}

// View displays the groups of d in an interactive TUI
func (gb *GroupBrowser) View(d *domain.Discovery, l *layout.Layout) error {
	entries := browserEntries(d, l)
	if len(entries) == 0 {
		color.Yellow("No test groups found in %s", d.Root)
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, entry := range entries {
		list.AddItem(formatEntryItem(entry, i+1), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test Groups (%d total, %d files) | Use ↑↓ to navigate, → to view details, ← to go back, [yellow]q[white] or Ctrl+C to exit ", len(entries), d.Files))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(entries) {
			detailsView.SetText(formatEntryDetails(entries[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatEntryItem formats a list row using tview color tags
func formatEntryItem(entry browserEntry, number int) string {
	return fmt.Sprintf("[yellow]%d.[white] %s [gray](%s)[white]", number, entry.Name, entry.Bucket)
}

// formatEntryDetails formats the details pane of a group
func formatEntryDetails(entry browserEntry) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[green]Group: %s[white]\n\n", entry.Name)
	fmt.Fprintf(&builder, "[cyan]Bucket:[white] %s (%s)\n", entry.Bucket.Title(), entry.Bucket)
	fmt.Fprintf(&builder, "[cyan]Runner:[white] %s\n\n", entry.Target)

	fmt.Fprintf(&builder, "[yellow]Declared in:[white]\n")
	for _, src := range entry.Sources {
		fmt.Fprintf(&builder, "  %s\n", src)
	}

	fmt.Fprintf(&builder, "\n[yellow]Runner lines:[white]\n")
	fmt.Fprintf(&builder, "  %s(%s);\n", entry.Export, entry.Name)
	fmt.Fprintf(&builder, "  %s(%s);\n", entry.Import, entry.Name)

	return builder.String()
}
