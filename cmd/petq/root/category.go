package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"petquest/internal/ui"
)

func newCategoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage task categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, c := range a.eng.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", ui.Swatch(c.Color), ui.Key.Render(c.ID), c.Name)
			}
			return nil
		},
	}

	var color string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := a.eng.AddCategory(ctx, args[0], color)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconCategory, ui.Key.Render(c.ID), c.Name)
			return nil
		},
	}
	add.Flags().StringVar(&color, "color", "", "Color, a hex value or a class name like bg-blue-500")

	rm := &cobra.Command{
		Use:   "rm <id|name>",
		Short: "Delete a category; its tasks become uncategorized",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id or name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveCategory(a.eng, args[0])
			if err != nil {
				return err
			}
			if err := a.eng.DeleteCategory(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted category."))
			return nil
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}
