package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumbunggroup/lumbung-backend/internal/cli/commands"
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(m tea.Model) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "contactctl",
		Short:        "Lumbung Group contact form tools",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm("")
		},
	}
	root.AddCommand(
		commands.SchemaCmd(),
		commands.ValidateCmd(),
		FormCmd(),
	)
	return root
}
