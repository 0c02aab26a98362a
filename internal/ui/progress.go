package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ScanProgress shows a progress bar while test files are parsed. The bar is
// created on the first update, once the number of files is known.
type ScanProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// NewScanProgress creates a scan progress bar writing to out
func NewScanProgress(out io.Writer) *ScanProgress {
	return &ScanProgress{out: out}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Update advances the bar to done of total files with the running group count
func (p *ScanProgress) Update(done, total, groups int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription(describeScan(0)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        color.CyanString("█"),
				SaucerHead:    color.CyanString("█"),
				SaucerPadding: "░",
				BarStart:      "│",
				BarEnd:        "│",
			}),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(p.out, "\n")
			}),
			progressbar.OptionSetRenderBlankState(true),
		)
	}
	p.bar.Set(done)
	p.bar.Describe(describeScan(groups))
}

// Finish completes the progress bar
func (p *ScanProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

func describeScan(groups int) string {
	return color.CyanString("Scanning cases: ") + color.GreenString("[groups: %d]", groups)
}
