package console

import (
	"fmt"
	"io"
	"strings"

	"scriptforge/internal/script"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorIndigo = "\033[38;5;63m"
	colorSlate  = "\033[38;5;250m"
)

// Print renders a script as plain terminal text. Color is applied only when color is true.
func Print(w io.Writer, r *script.Result, color bool) {
	c := func(code string) string {
		if !color {
			return ""
		}
		return code
	}

	fmt.Fprintf(w, "%s%s■ %s%s\n", c(colorBold), c(colorIndigo), strings.ToUpper(r.Title), c(colorReset))

	section := func(title string) {
		fmt.Fprintf(w, "\n%s─ %s%s\n", c(colorIndigo), title, c(colorReset))
	}

	section("Characters")
	for _, ch := range r.Characters {
		fmt.Fprintf(w, "  %s%s%s%s %s\n", c(colorBold), ch.Name, c(colorReset), dots(ch.Name, c(colorDim), c(colorReset)), ch.Bio)
	}

	section("Plot Outline")
	fmt.Fprintf(w, "  %s\n", r.PlotOutline)
	section("Plot Outline (Hindi)")
	fmt.Fprintf(w, "  %s\n", r.PlotOutlineHindi)
	section("Detailed Synopsis")
	fmt.Fprintf(w, "  %s\n", r.DetailedSynopsis)

	section("Scenes")
	for _, sc := range r.Scenes {
		fmt.Fprintf(w, "  %sSCENE %d%s  %s%s · %s%s\n",
			c(colorBold), sc.Number, c(colorReset),
			c(colorSlate), strings.ToUpper(sc.Location), sc.Mood, c(colorReset))
		fmt.Fprintf(w, "    %s\n", sc.Description)
		for _, d := range sc.Dialogues {
			fmt.Fprintf(w, "      %s\n", d)
		}
	}

	fmt.Fprintf(w, "%s─ Summary%s: %d characters | %d scenes | %d dialogue lines\n\n",
		c(colorIndigo), c(colorReset), len(r.Characters), len(r.Scenes), r.DialogueCount())
}

// dots is the leader between a name and its bio.
func dots(label, on, off string) string {
	n := 18 - len([]rune(label))
	if n < 1 {
		n = 1
	}
	return on + strings.Repeat("·", n) + off
}
