package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"agro_cart/internal/domain/handoff"
	"agro_cart/internal/infrastructure/navigation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errMissingBaseURL = errors.New("missing marketplace base URL: pass --base or set MARKETPLACE_BASE_URL")

// newNavigator is swapped in tests.
var newNavigator = func() handoff.Navigator { return navigation.NewBrowserNavigator() }

func newHandoffCmd() *cobra.Command {
	var (
		baseURL string
		open    bool
	)

	cmd := &cobra.Command{
		Use:   "handoff name[:qty[:price]]...",
		Short: "Build the marketplace URL for a cart and optionally open it",
		Long: `Build the marketplace hand-off URL for the given items.

Items without a price are priced with the fallback pricer. With --open the
URL is opened in the system browser; otherwise it is only printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := strings.TrimSpace(baseURL)
			if base == "" {
				base = strings.TrimSpace(os.Getenv("MARKETPLACE_BASE_URL"))
			}
			if base == "" {
				return errMissingBaseURL
			}

			items, err := parseItemArgs(args)
			if err != nil {
				return err
			}

			var url string
			if open {
				url, err = handoff.Invoke(cmd.Context(), newNavigator(), base, items)
			} else if err = handoff.Validate(items); err == nil {
				url = handoff.BuildURL(base, items)
			}
			if err != nil {
				zap.L().Warn("[handoff][cli] hand-off failed", zap.Error(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base", "", "marketplace base URL (default $MARKETPLACE_BASE_URL)")
	cmd.Flags().BoolVar(&open, "open", false, "open the URL in the system browser")
	return cmd
}
