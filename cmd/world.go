package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/spf13/cobra"
)

func newWorldCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Inspect and edit the world file",
	}

	cmd.AddCommand(
		newWorldSetBlockCmd(app),
		newWorldGetBlockCmd(app),
		newWorldPlacementsCmd(app),
	)

	return cmd
}

func newWorldSetBlockCmd(app *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "set-block <state>",
		Short: "Place a block state at --at x,y,z",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := parseVec(at)
			if err != nil {
				return err
			}

			state := domain.BlockState(strings.TrimSpace(args[0]))
			if state == "" {
				return errors.New("block state is empty")
			}

			if err := app.world.SetBlock(cmd.Context(), point, state); err != nil {
				return fmt.Errorf("set block: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s.\n", point, state)
			return err
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "block coordinates x,y,z")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newWorldGetBlockCmd(app *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "get-block",
		Short: "Print the block state at --at x,y,z",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			point, err := parseVec(at)
			if err != nil {
				return err
			}

			state, err := app.world.Block(cmd.Context(), point)
			if err != nil {
				return fmt.Errorf("get block: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), state)
			return err
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "block coordinates x,y,z")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newWorldPlacementsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "placements",
		Short: "List recorded world writes and their causes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			placements, err := app.world.Placements(cmd.Context())
			if err != nil {
				return err
			}

			for _, placement := range placements {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s..%s\n",
					placement.Cause.Source,
					placement.Cause.SpawnType,
					placement.Box.Min,
					placement.Box.Max,
				)
			}

			return nil
		},
	}
}

func newActorCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actor",
		Short: "Manage actors in the world file",
	}

	cmd.AddCommand(newActorSetCmd(app))

	return cmd
}

func newActorSetCmd(app *app) *cobra.Command {
	var (
		at   string
		item string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Place the --actor at --at x,y,z, optionally holding --item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			point, err := parseVec(at)
			if err != nil {
				return err
			}

			id, name := app.actor()
			actor := domain.Actor{
				ID:       id,
				Name:     name,
				Position: point,
				HeldItem: domain.ItemKind(strings.TrimSpace(item)),
			}
			if err := app.world.UpsertActor(cmd.Context(), actor); err != nil {
				return fmt.Errorf("set actor: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Actor %s is at %s.\n", name, point)
			return err
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "actor position x,y,z")
	cmd.Flags().StringVar(&item, "item", "", "item held in hand, e.g. minecraft:wooden_axe")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
