package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// sessionWriteAnnotation marks commands that may change the actor's session
// and so must persist it after a successful run.
const sessionWriteAnnotation = "schem/session-write"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "schem",
		Short:         "Voxel schematics clipboard: select, copy, paste, save and load",
		Long:          "schem keeps a per-actor selection and clipboard over a voxel world, and saves or loads clipboards as gzip-compressed NBT schematic files.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&flags.actor, "actor", "", "actor name or UUID (defaults to the configured actor)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output and show full error diagnostics")

	app, err := wireApp(flags)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.AddCommand(newVersionCmd())
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if flags.verbose {
			app.logLevel.Set(slog.LevelDebug)
		}
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		if _, ok := cmd.Annotations[sessionWriteAnnotation]; !ok {
			return nil
		}
		return app.persistSession(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		writesSession(newPosCmd(app, 1)),
		writesSession(newPosCmd(app, 2)),
		writesSession(newInteractCmd(app)),
		writesSession(newCopyCmd(app)),
		newPasteCmd(app),
		newSaveCmd(app),
		writesSession(newLoadCmd(app)),
		newListCmd(app),
		newStatusCmd(app),
		newWorldCmd(app),
		newActorCmd(app),
	)

	return rootCmd
}

func writesSession(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[sessionWriteAnnotation] = "true"
	return cmd
}
