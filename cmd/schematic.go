package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSaveCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the clipboard as a new schematic file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			actor, _ := app.actor()

			summary, err := runWithProgress(cmd, quiet, "Saving schematic...", func(ctx context.Context) (string, error) {
				path, err := app.service.Save(ctx, actor, name)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Saved schematic to %s.", path), nil
			})
			if err != nil {
				return app.fail(opSave, name, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show a progress spinner")

	return cmd
}

func newLoadCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a schematic file into the clipboard, anchored at the actor's position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			actor, _ := app.actor()

			summary, err := runWithProgress(cmd, quiet, "Loading schematic...", func(ctx context.Context) (string, error) {
				if _, err := app.service.Load(ctx, actor, name); err != nil {
					return "", err
				}
				return "Loaded schematic from " + name, nil
			})
			if err != nil {
				return app.fail(opLoad, name, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show a progress spinner")

	return cmd
}

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved schematics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := app.service.ListSchematics(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
