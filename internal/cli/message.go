package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/message-part/internal/part"
)

type messageOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <message>",
		Short: "Set a part's message",
		Long:  "Open a fresh editor session for the part, replace the message, and save it. An empty string is a valid message.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], args[1])
		},
	}
}

func runEdit(cmd *cobra.Command, id, message string) error {
	repo, database, err := newPartRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	ctx := context.Background()
	if _, err := repo.GetByID(ctx, id); err != nil {
		return err
	}

	ed := part.NewEditor(repo.Store(id))
	if err := ed.Open(ctx, true); err != nil {
		return err
	}

	ed.Field = message
	saved, err := ed.Save(ctx, true)
	if err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("part %s: save was declined", id)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), messageOutput{ID: id, Message: ed.Field})
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved message for part %s\n", id)
	return err
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Render a part's message",
		Long:  "Render the part's display surface and print the message exactly as stored. A part that was never saved prints an empty line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, id string) error {
	repo, database, err := newPartRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	ctx := context.Background()
	if _, err := repo.GetByID(ctx, id); err != nil {
		return err
	}

	d := part.NewDisplay(repo.Store(id))
	if err := d.Render(ctx, true); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), messageOutput{ID: id, Message: d.Text})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Text)
	return err
}
