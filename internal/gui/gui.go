// Package gui is the desktop surface of the renamer: a settings form, a
// live old→new preview with conflict highlighting, and a rename button
// gated on the plan being conflict-free. It owns the file list and the
// configuration snapshot; all rename semantics live in the core packages.
package gui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/engine"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/namegen"
	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/planner"
)

type guiState struct {
	folderPath string
	entries    []planner.Entry

	plan      *planner.Plan
	conflicts *planner.ConflictSet
}

// Run opens the main window and blocks until it is closed.
func Run(eng *engine.Engine) error {
	a := app.NewWithID("com.adambudac.qbrt")
	w := a.NewWindow("Quick Batch Rename Tool")
	w.Resize(fyne.NewSize(980, 640))

	state := &guiState{}

	/* -------------------- Settings form -------------------- */

	nameMask := widget.NewEntry()
	nameMask.SetPlaceHolder("new name mask, e.g. holiday_ or ep{counter}")
	extMask := widget.NewEntry()
	extMask.SetPlaceHolder("new extension mask, e.g. jpg")

	keepNameCheck := widget.NewCheck("Keep original filename", nil)
	keepExtCheck := widget.NewCheck("Keep original extension", nil)
	keepExtCheck.SetChecked(true)

	counterCheck := widget.NewCheck("Counter", nil)
	counterCheck.SetChecked(true)
	counterToNameCheck := widget.NewCheck("…in filename", nil)
	counterToNameCheck.SetChecked(true)
	counterToExtCheck := widget.NewCheck("…in extension", nil)

	startEntry := widget.NewEntry()
	startEntry.SetText("1")
	incrementEntry := widget.NewEntry()
	incrementEntry.SetText("1")
	zerofillEntry := widget.NewEntry()
	zerofillEntry.SetText("1")

	/* -------------------- Preview & status -------------------- */

	previewBox := container.NewVBox()
	statusLabel := widget.NewLabel("Ready")
	progressBar := widget.NewProgressBar()
	progressBar.Hide()

	renameBtn := widget.NewButtonWithIcon("Rename", theme.ConfirmIcon(), nil)
	renameBtn.Disable()

	makeCell := func(text string) *widget.RichText {
		rt := widget.NewRichText(&widget.TextSegment{
			Text: text,
			Style: widget.RichTextStyle{
				SizeName: theme.SizeNameCaptionText,
			},
		})
		rt.Wrapping = fyne.TextWrapWord
		return rt
	}

	readConfig := func() (namegen.Config, error) {
		start, err := strconv.Atoi(strings.TrimSpace(startEntry.Text))
		if err != nil {
			return namegen.Config{}, fmt.Errorf("counter start: %w", err)
		}
		increment, err := strconv.Atoi(strings.TrimSpace(incrementEntry.Text))
		if err != nil {
			return namegen.Config{}, fmt.Errorf("counter increment: %w", err)
		}
		zerofill, err := strconv.Atoi(strings.TrimSpace(zerofillEntry.Text))
		if err != nil {
			return namegen.Config{}, fmt.Errorf("zerofill: %w", err)
		}

		cfg := namegen.Config{
			NameMask:         nameMask.Text,
			ExtMask:          extMask.Text,
			KeepOriginalName: keepNameCheck.Checked,
			KeepOriginalExt:  keepExtCheck.Checked,
			CounterEnabled:   counterCheck.Checked,
			CounterStart:     start,
			CounterIncrement: increment,
			CounterPadding:   zerofill,
			CounterToName:    counterToNameCheck.Checked,
			CounterToExt:     counterToExtCheck.Checked,
		}
		return cfg, cfg.Validate()
	}

	renderPreview := func() {
		previewBox.Objects = nil

		h1 := widget.NewLabelWithStyle("Original", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		h2 := widget.NewLabelWithStyle("Preview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		previewBox.Add(container.NewGridWithColumns(2, h1, h2))
		previewBox.Add(widget.NewSeparator())

		if state.plan != nil {
			for _, item := range state.plan.Items {
				warn := ""
				if state.conflicts != nil && state.conflicts.Contains(item.TargetPath) {
					warn = "  ⚠ conflict"
				} else if item.Unchanged() {
					warn = "  (unchanged)"
				}
				previewBox.Add(container.NewGridWithColumns(2,
					makeCell(item.Entry.FullName()),
					makeCell(item.NewFullName()+warn),
				))
				previewBox.Add(widget.NewSeparator())
			}
		}
		previewBox.Refresh()
	}

	refreshPreview := func() {
		renameBtn.Disable()
		state.plan = nil
		state.conflicts = nil

		if len(state.entries) == 0 {
			statusLabel.SetText("Ready")
			renderPreview()
			return
		}

		cfg, err := readConfig()
		if err != nil {
			statusLabel.SetText("Invalid settings: " + err.Error())
			renderPreview()
			return
		}

		plan, err := planner.BuildPlan(state.entries, cfg)
		if err != nil {
			statusLabel.SetText("Invalid settings: " + err.Error())
			renderPreview()
			return
		}

		set, err := eng.DetectConflicts(plan)
		if err != nil {
			statusLabel.SetText("Preview failed: " + err.Error())
			renderPreview()
			return
		}

		state.plan = plan
		state.conflicts = set
		renderPreview()

		if !set.Empty() {
			statusLabel.SetText(fmt.Sprintf("%d conflicting name(s) — rename blocked", len(set.Conflicts)))
			return
		}
		statusLabel.SetText(fmt.Sprintf("Previews updated (%d files)", plan.Len()))
		renameBtn.Enable()
	}

	/* -------------------- Folder loading -------------------- */

	folderLabel := widget.NewLabel("Folder: (none)")
	folderLabel.Truncation = fyne.TextTruncateEllipsis

	loadFolder := func(path string) {
		paths, err := eng.ListFiles(path)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}

		state.folderPath = path
		folderLabel.SetText("Folder: " + path)
		state.entries = state.entries[:0]
		for i, p := range paths {
			state.entries = append(state.entries, planner.NewEntry(p, i))
		}
		refreshPreview()
	}

	selectFolderBtn := widget.NewButton("Select Folder…", func() {
		dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			loadFolder(uri.Path())
		}, w).Show()
	})

	refreshBtn := widget.NewButton("Refresh", func() {
		if state.folderPath == "" {
			return
		}
		loadFolder(state.folderPath)
	})

	clearBtn := widget.NewButton("Clear", func() {
		state.entries = nil
		statusLabel.SetText("Ready")
		refreshPreview()
	})

	/* -------------------- Rename action -------------------- */

	renameBtn.OnTapped = func() {
		if state.plan == nil || state.conflicts == nil || !state.conflicts.Empty() {
			return
		}
		plan := state.plan

		msg := fmt.Sprintf("Rename %d file(s) in\n%s?", plan.Len(), state.folderPath)
		confirm := dialog.NewCustomConfirm("Confirm rename", "Rename", "Cancel",
			widget.NewLabel(msg),
			func(ok bool) {
				if !ok {
					return
				}

				progressBar.SetValue(0)
				progressBar.Show()

				result, err := eng.Apply(context.Background(), &engine.ApplyRequest{
					Plan: plan,
					Progress: func(ev engine.ProgressEvent) {
						progressBar.SetValue(float64(ev.Done) / float64(ev.Total))
					},
				})

				progressBar.Hide()

				if err != nil {
					dialog.ShowError(err, w)
				} else {
					dialog.ShowInformation("Rename complete", resultMessage(result), w)
				}

				if state.folderPath != "" {
					loadFolder(state.folderPath)
				}
			},
			w,
		)
		confirm.Show()
	}

	/* -------------------- Wiring -------------------- */

	onChanged := func(string) { refreshPreview() }
	onToggled := func(bool) { refreshPreview() }
	nameMask.OnChanged = onChanged
	extMask.OnChanged = onChanged
	startEntry.OnChanged = onChanged
	incrementEntry.OnChanged = onChanged
	zerofillEntry.OnChanged = onChanged
	keepNameCheck.OnChanged = onToggled
	keepExtCheck.OnChanged = onToggled
	counterCheck.OnChanged = onToggled
	counterToNameCheck.OnChanged = onToggled
	counterToExtCheck.OnChanged = onToggled

	/* -------------------- Layout -------------------- */

	settings := container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Filename mask:"),
		nameMask,
		widget.NewLabel("Extension mask:"),
		extMask,
		widget.NewSeparator(),
		counterCheck,
		container.NewHBox(counterToNameCheck, counterToExtCheck),
		container.NewGridWithColumns(3,
			widget.NewLabel("Start:"),
			widget.NewLabel("Increment:"),
			widget.NewLabel("Zerofill:"),
		),
		container.NewGridWithColumns(3, startEntry, incrementEntry, zerofillEntry),
		widget.NewSeparator(),
		keepNameCheck,
		keepExtCheck,
	)

	topBar := container.NewBorder(nil, nil,
		container.NewHBox(selectFolderBtn, refreshBtn, clearBtn),
		nil,
		folderLabel,
	)

	bottomBar := container.NewBorder(nil, nil, statusLabel, renameBtn, progressBar)

	split := container.NewHSplit(
		container.NewVScroll(settings),
		container.NewVScroll(previewBox),
	)
	split.Offset = 0.34

	w.SetContent(container.NewBorder(topBar, bottomBar, nil, nil, split))

	refreshPreview()
	w.ShowAndRun()
	return nil
}

// resultMessage summarizes an apply result for the completion dialog.
func resultMessage(result *engine.ApplyResult) string {
	msg := fmt.Sprintf("Renamed: %d\nUnchanged: %d", result.Committed, result.Unchanged)
	if result.Failed > 0 {
		msg += fmt.Sprintf("\nFailed: %d", result.Failed)
		for _, entry := range result.Entries {
			if entry.Status == engine.StatusFailed {
				msg += fmt.Sprintf("\n  %s (left at %s)", filepath.Base(entry.NewPath), entry.TempPath)
			}
		}
	}
	return msg
}
