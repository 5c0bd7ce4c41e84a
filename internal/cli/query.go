package cli

import (
	"fmt"
	"strconv"

	"github.com/kofuk/bungie"
	"github.com/spf13/cobra"
)

func newUserCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>...",
		Short: "Show Bungie.net users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			users, err := app.Client.FetchBungieUsersByIDs(cmd.Context(), ids)
			if err != nil {
				return err
			}
			return app.print(users)
		},
	}
}

func newSearchCommand(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search users by global name prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Client.SearchUsers(cmd.Context(), args[0]).Take(limit).Collect()
			if err != nil {
				return err
			}
			return app.print(users)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of users")

	return cmd
}

func newProfileCommand(app *App) *cobra.Command {
	var components string

	cmd := &cobra.Command{
		Use:   "profile <membership type> <membership id>",
		Short: "Show profile components",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := parseMembershipType(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			cs, err := parseComponents(components)
			if err != nil {
				return err
			}
			profile, err := app.Client.FetchProfile(cmd.Context(), id, mt, cs, "")
			if err != nil {
				return err
			}
			return app.print(profile)
		},
	}

	cmd.Flags().StringVarP(&components, "components", "c", "100,200", "Comma separated component ids")

	return cmd
}

func newClanCommand(app *App) *cobra.Command {
	var members bool

	cmd := &cobra.Command{
		Use:   "clan <id or name>",
		Short: "Show a clan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var id int64
			if n, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				id = n
			} else {
				clan, err := app.Client.FetchClan(ctx, args[0], "")
				if err != nil {
					return err
				}
				id = clan.ID
			}

			if members {
				list, err := app.Client.FetchClanMembers(ctx, id, bungie.MemberQuery{}).Collect()
				if err != nil {
					return err
				}
				return app.print(list)
			}

			clan, err := app.Client.FetchClanFromID(ctx, id, "")
			if err != nil {
				return err
			}
			return app.print(clan)
		},
	}

	cmd.Flags().BoolVarP(&members, "members", "m", false, "List members instead")

	return cmd
}

func newItemCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "item <hash>",
		Short: "Show an inventory item definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid hash %q: %w", args[0], err)
			}
			item, err := app.Definitions().InventoryItem(cmd.Context(), uint32(hash))
			if err != nil {
				return err
			}
			return app.print(item)
		},
	}
}
