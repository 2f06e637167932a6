package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// Styles for terminal output. Plain text goes out when stdout is not a
// terminal so event lines stay grep- and pipe-friendly.
var (
	momentStyle  = lipgloss.NewStyle().Bold(true)
	fortunaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// styledOutput reports whether the command is writing to a terminal.
func styledOutput(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatEvent renders one event line: moment, luminary signs, Fortuna
// placement with house, then the matched body.
func formatEvent(ev domain.ConjunctionEvent, styled bool) string {
	moment := ev.Moment.UTC().Format("2006-01-02 15:04")
	fortuna := fmt.Sprintf("%.2f deg %s house %d", ev.Fortuna.Degree, ev.Fortuna.Sign, ev.House)
	body := fmt.Sprintf("%s %.2f deg %s", ev.Body, ev.BodyPlacement.Degree, ev.BodyPlacement.Sign)

	if styled {
		moment = momentStyle.Render(moment)
		fortuna = fortunaStyle.Render(fortuna)
		body = bodyStyle.Render(body)
	}
	return fmt.Sprintf("%s  Sun %s  Moon %s  Fortuna %s  %s", moment, ev.SunSign, ev.MoonSign, fortuna, body)
}
