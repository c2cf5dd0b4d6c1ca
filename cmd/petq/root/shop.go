package root

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"petquest/internal/catalog"
	"petquest/internal/engine"
	"petquest/internal/ui"
)

func newShopCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Browse pets, accessories and themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			st := a.eng.State()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop")+"  "+ui.Points(st.Points))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Pets"))
			for _, p := range catalog.ShopPets() {
				shopLine(out, p.ID, ui.PetIcon(string(p.Type))+" "+p.Name, p.Cost, slices.Contains(st.Pets, p.ID), st.ActivePetID == p.ID)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Accessories"))
			for _, acc := range catalog.Accessories() {
				shopLine(out, acc.ID, acc.Name+" "+ui.Muted.Render("("+string(acc.Slot)+")"), acc.Cost, slices.Contains(st.Accessories, acc.ID), st.ActiveAccessoryID == acc.ID)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Themes"))
			for _, th := range catalog.Themes() {
				shopLine(out, th.ID, ui.Swatch(th.PrimaryColor)+" "+th.Name, th.Cost, slices.Contains(st.Themes, th.ID), st.ActiveThemeID == th.ID)
			}
			return nil
		},
	}
}

func shopLine(out io.Writer, id, label string, cost int, owned, active bool) {
	status := ui.Gold.Render(fmt.Sprintf("%d", cost))
	switch {
	case active:
		status = ui.Good.Render("equipped")
	case owned:
		status = ui.Muted.Render("owned")
	}
	fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(id), label, status)
}

func itemKindArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: <pet|accessory|theme> <id>")
	}
	switch engine.ItemKind(args[0]) {
	case engine.ItemPet, engine.ItemAccessory, engine.ItemTheme:
		return nil
	default:
		return fmt.Errorf("unknown kind %q (pet|accessory|theme)", args[0])
	}
}

func newBuyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <pet|accessory|theme> <id>",
		Short: "Buy an item from the shop",
		Args:  itemKindArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			before := a.eng.Achievements()
			id := args[1]
			switch engine.ItemKind(args[0]) {
			case engine.ItemPet:
				err = a.eng.UnlockPet(ctx, id)
			case engine.ItemAccessory:
				err = a.eng.BuyAccessory(ctx, id)
			case engine.ItemTheme:
				err = a.eng.BuyTheme(ctx, id)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.IconShop, ui.Good.Render("Got "+id+"!"), ui.Points(a.eng.Points()))
			for i, ach := range a.eng.Achievements() {
				if ach.Unlocked && i < len(before) && !before[i].Unlocked {
					fmt.Fprintf(out, "%s %s\n", ui.IconTrophy, ui.Gold.Render(ach.Title))
				}
			}
			return nil
		},
	}
}

func newEquipCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equip <pet|accessory|theme> <id>",
		Short: "Equip an owned item (use \"none\" to take off the accessory)",
		Args:  itemKindArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd.Context())
			a, cleanup, err := openApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id := args[1]
			kind := engine.ItemKind(args[0])
			if kind == engine.ItemAccessory && id == "none" {
				id = ""
			}
			if id != "" && !owns(a.eng.State(), kind, id) {
				return fmt.Errorf("you don't own %s %q", kind, id)
			}
			switch kind {
			case engine.ItemPet:
				err = a.eng.SetActivePet(ctx, id)
			case engine.ItemAccessory:
				err = a.eng.SetActiveAccessory(ctx, id)
			case engine.ItemTheme:
				err = a.eng.SetActiveTheme(ctx, id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Equipped."))
			return nil
		},
	}
}

func owns(st engine.State, kind engine.ItemKind, id string) bool {
	switch kind {
	case engine.ItemPet:
		return slices.Contains(st.Pets, id)
	case engine.ItemAccessory:
		return slices.Contains(st.Accessories, id)
	case engine.ItemTheme:
		return slices.Contains(st.Themes, id)
	}
	return false
}
