package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCopyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the selection into the clipboard, anchored at the actor's position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, _ := app.actor()
			if _, err := app.service.Copy(cmd.Context(), actor); err != nil {
				return app.fail(opCopy, "", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Saved to clipboard.")
			return err
		},
	}
}

func newPasteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paste",
		Short: "Paste the clipboard at the actor's position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, _ := app.actor()
			if _, err := app.service.Paste(cmd.Context(), actor); err != nil {
				return app.fail(opPaste, "", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Pasted clipboard.")
			return err
		},
	}
}
