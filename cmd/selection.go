package cmd

import (
	"fmt"

	"github.com/bnema/voxel-schematics/internal/application"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/spf13/cobra"
)

var cornerMessages = map[int]string{
	1: "First position saved.",
	2: "Second position saved.",
}

func newPosCmd(app *app, corner int) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("pos%d", corner),
		Short: fmt.Sprintf("Set selection corner %d to the actor's position or --at x,y,z", corner),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, _ := app.actor()
			ctx := cmd.Context()

			if at != "" {
				point, err := parseVec(at)
				if err != nil {
					return err
				}
				if corner == 1 {
					app.service.SetFirst(ctx, actor, point)
				} else {
					app.service.SetSecond(ctx, actor, point)
				}
			} else {
				var err error
				if corner == 1 {
					_, err = app.service.SetFirstAtActor(ctx, actor)
				} else {
					_, err = app.service.SetSecondAtActor(ctx, actor)
				}
				if err != nil {
					return app.fail(opSelect, "", err)
				}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), cornerMessages[corner])
			return err
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "block coordinates x,y,z")

	return cmd
}

func newInteractCmd(app *app) *cobra.Command {
	var (
		hand string
		at   string
	)

	cmd := &cobra.Command{
		Use:   "interact",
		Short: "Click a block; with the selection tool held this sets a corner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			block, err := parseVec(at)
			if err != nil {
				return err
			}

			actor, _ := app.actor()
			result, err := app.service.Interact(cmd.Context(), application.InteractCommand{
				Actor: actor,
				Hand:  application.Hand(hand),
				Block: block,
			})
			if err != nil {
				return app.fail(opSelect, "", err)
			}

			if !result.Handled {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Not holding %s, nothing selected.\n", toolItem(app))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cornerMessages[result.Corner])
			return err
		},
	}

	cmd.Flags().StringVar(&hand, "hand", string(application.HandPrimary), "hand used for the click: primary or secondary")
	cmd.Flags().StringVar(&at, "at", "", "clicked block coordinates x,y,z")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func toolItem(app *app) domain.ItemKind {
	if app.cfg.ToolItem == domain.ItemNone {
		return domain.ItemWoodenAxe
	}

	return app.cfg.ToolItem
}
