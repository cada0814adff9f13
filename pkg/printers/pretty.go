package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/store"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" pick")
	default:
		_, _ = c.Println(" picks")
	}
}

// History renders recorded picks, oldest first.
func (pp *PrettyPrint) History(picks ...store.Pick) {
	if len(picks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("Recorded"), bold("Picker"), bold("Kind"), bold("Date"), bold("ID"))
	} else {
		tbl.AddRow(bold("Recorded"), bold("Picker"), bold("Kind"), bold("Date"))
	}

	for _, p := range picks {
		kind := "day"
		if p.IsRange {
			kind = "range"
		}
		when := p.RecordedAt.Format("2006-01-02 15:04")
		if pp.ShowID {
			tbl.AddRow(when, p.Picker, kind, p.Date().String(), p.ID)
		} else {
			tbl.AddRow(when, p.Picker, kind, p.Date().String())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}
