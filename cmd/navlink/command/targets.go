package command

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/navlink-io/navlink/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the supported navigation apps and their capabilities",
	Long: `List the supported navigation apps and their capabilities.

The ROUTING and START columns show whether an app's deeplinks can ask
for directions and carry an explicit start location; MODES lists the
travel modes the app's URL scheme can express. An empty MODES column
means the app has no travel mode field at all.`,
	RunE: runTargets,
	Args: cobra.NoArgs,
}

func runTargets(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tNAME\tROUTING\tSTART\tMODES")
	for _, t := range application.NewLinkService(zap.NewNop()).ListTargets() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Key,
			t.Name,
			yesNo(t.SupportsRouting),
			yesNo(t.SupportsStartLocation),
			strings.Join(t.TravelModes, ","),
		)
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
