package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// SleepSummary renders the label:: value sleep lines as a two column table.
func (pp *PrettyPrint) SleepSummary(lines []string) {
	if len(lines) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	for _, line := range lines {
		label, value, found := strings.Cut(line, ":: ")
		if !found {
			table.AddRow(line)
			continue
		}
		table.AddRow(label, value)
	}
	fmt.Println(table)
	fmt.Println("")
}

// ExerciseLog prints one checklist entry per activity.
func (pp *PrettyPrint) ExerciseLog(entries []string) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	for _, e := range entries {
		_, _ = t.Println(e)
	}
	_, _ = t.Println("")
}

// Notice prints an informational message in faint italics.
func (pp *PrettyPrint) Notice(format string, a ...interface{}) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf(format+"\n", a...)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
