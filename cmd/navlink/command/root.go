// Package command provides the root and sub-commands for the navlink
// CLI. Commands are organized using the cobra library.
// The "build" sub-command renders the deeplink URL that opens one of
// the supported navigation apps for a destination, and the "targets"
// sub-command lists the supported apps with their capabilities.
//
//	navlink build --target waze --dest 50.586206,8.674230
//	navlink build --target here_wego --dest 50.586206,8.674230 \
//	    --route --start 50.579869,8.662212 --travel-mode walking
//	navlink targets
package command

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "navlink",
	Short: "Build deeplink URLs for third-party navigation apps",
	Long: `Build deeplink URLs for third-party navigation apps.

Given a destination (and optionally a start location, a display name,
and a travel mode), navlink renders the app-specific URL that opens one
of eight navigation apps on that location or route. Each app has its own
URL scheme with its own coordinate ordering, parameter names and travel
mode keywords; requests an app cannot express fail with a message naming
the unsupported field instead of silently dropping it.`,
}

// Execute runs the rootCmd, which parses CLI arguments and flags and
// runs the most specific sub-command. Cobra reports the error itself;
// Execute only maps it to a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
