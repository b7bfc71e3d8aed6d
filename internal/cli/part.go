package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "Manage content parts",
	}

	cmd.AddCommand(
		newPartAddCmd(),
		newPartListCmd(),
		newPartRemoveCmd(),
	)

	return cmd
}

func newPartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new, empty part",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, database, err := newPartRepo()
			if err != nil {
				return err
			}
			defer closeDB(database)

			p, err := repo.Create(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), p)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added part %s (%s)\n", p.ID, p.Title)
			return err
		},
	}
}

func newPartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, database, err := newPartRepo()
			if err != nil {
				return err
			}
			defer closeDB(database)

			parts, err := repo.List(context.Background())
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), parts)
			}
			return printPartTable(cmd.OutOrStdout(), parts)
		},
	}
}

func newPartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a part and its message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, database, err := newPartRepo()
			if err != nil {
				return err
			}
			defer closeDB(database)

			if err := repo.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed part %s\n", args[0])
			return err
		},
	}
}
