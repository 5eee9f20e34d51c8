package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"upb/internal/app"
	"upb/internal/printer"
)

// New создает корневую CLI-команду. По умолчанию запускается REPL.
func New(a *app.App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "upb",
		Short:        "Интерактивный браузер публичных JSON API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := &REPL{
				Registry: a.Registry,
				Store:    a.Store,
				Reload:   a.Reload,
				In:       os.Stdin,
				Out:      cmd.OutOrStdout(),
				Log:      a.Log,
			}
			return repl.Run(cmd.Context())
		},
	}

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newExecCmd(a))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version)
		},
	}
}

func newExecCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <verb> [args...]",
		Short: "Выполнить одну команду без интерактивного режима",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.Registry.Dispatch(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			printer.Render(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
