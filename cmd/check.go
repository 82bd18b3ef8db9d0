package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"devsetup/internal/installer"
	"devsetup/internal/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report installed and missing tools without changing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		// per-item detection lines would drown the table
		restore := logger.SetOutput(io.Discard)
		statuses := installer.Check(cmd.Context(), env.Checker, env.Home)
		restore()

		logger.Msg("%s\n", statusTable(statuses))
		return nil
	},
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	presentStyle = cellStyle.Foreground(lipgloss.Color("2"))
	missingStyle = cellStyle.Foreground(lipgloss.Color("1"))
)

func statusTable(statuses []installer.Status) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Category", "Installed", "Missing").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return presentStyle
			case col == 2:
				return missingStyle
			}
			return cellStyle
		})

	for _, s := range statuses {
		var present, missing []string
		for _, f := range s.Present {
			present = append(present, f.Item.Name)
		}
		for _, item := range s.Missing {
			missing = append(missing, item.Name)
		}
		t.Row(s.Title, strings.Join(present, "\n"), strings.Join(missing, "\n"))
	}
	return t.Render()
}
