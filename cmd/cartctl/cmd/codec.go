package cmd

import (
	"fmt"
	"text/tabwriter"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/itemcodec"
	"agro_cart/internal/domain/pricing"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode name[:qty[:price]]...",
		Short: "Print the encoded items string for a list of items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItemArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), itemcodec.Encode(items))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <items>",
		Short: "Show the items and total carried by an encoded items string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := entities.NewCart(itemcodec.Decode(args[0])...)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tQTY\tUNIT\tLINE")
			for i, it := range cart.Items() {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", i, it.Name, it.Quantity, it.UnitPrice, it.LineTotal())
			}
			fmt.Fprintf(w, "\tTOTAL\t\t\t%d\n", cart.ComputeTotal())
			return w.Flush()
		},
	}
}

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <name>...",
		Short: "Print the fallback price of each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range args {
				fmt.Fprintf(w, "%s\t%d\n", name, pricing.FallbackPrice(name))
			}
			return w.Flush()
		},
	}
}
