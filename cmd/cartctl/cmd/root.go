// Package cmd provides the cartctl commands.
package cmd

import (
	"fmt"
	"os"

	"agro_cart/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cartctl",
		Short: "Encode, inspect and hand off marketplace carts",
		Long: `cartctl works with the cart format shared by the farming assistant
and the marketplace: comma separated name:quantity:unitPrice segments,
each part percent-encoded.

Examples:
  cartctl encode "Neem Oil:2:250" "Urea:1:300"
  cartctl decode "Neem%20Oil:2:250,Urea:1:300"
  cartctl price "Neem Oil" "Copper Sulphate"
  cartctl handoff --base https://market.example.com/cart --open "Neem Oil" Urea:2`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.Config{Level: "warn", Format: "console", Output: "stderr"}
			if verbose {
				cfg.Level = "debug"
			}
			if err := logging.Initialize(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newPriceCmd())
	root.AddCommand(newHandoffCmd())
	return root
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}
