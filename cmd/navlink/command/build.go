package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/navlink-io/navlink/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildTarget     string
	buildDest       string
	buildRoute      bool
	buildStart      string
	buildTravelMode string
	buildName       string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the deeplink URL for one navigation app",
	Long: `Render the deeplink URL for one navigation app.

By default the URL shows the destination as a pin; --route asks for
directions instead. Coordinates are given as "lat,lng" decimal degrees.
Without --start, routes begin at the device's current position. The
travel mode must be one of driving, walking, transit or bicycling;
apps without a keyword for the requested mode report an error.

System maps are opened through the platform's native map display
rather than a URL, so building for them prints a notice instead.`,
	RunE: runBuild,
	Args: cobra.NoArgs,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	dest, err := parseCoordinate(buildDest)
	if err != nil {
		return fmt.Errorf("invalid --dest: %w", err)
	}

	req := application.BuildLinkRequest{
		Target:      buildTarget,
		Mode:        application.ModeShow,
		Destination: dest,
		TravelMode:  buildTravelMode,
		Name:        buildName,
	}
	if buildRoute {
		req.Mode = application.ModeRoute
	}
	// Parsed unconditionally: a --start without --route must be rejected
	// by the service, not dropped.
	if buildStart != "" {
		start, err := parseCoordinate(buildStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		req.Start = start
	}

	link, err := application.NewLinkService(zap.NewNop()).BuildLink(req)
	if err != nil {
		return err
	}

	if link.NativeDisplay {
		fmt.Fprintf(cmd.OutOrStdout(), "%s opens through the native map display; no URL is needed\n", link.TargetName)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), link.URL)
	return nil
}

// parseCoordinate parses a "lat,lng" pair of decimal degrees.
func parseCoordinate(s string) (*application.CoordinateDTO, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"lat,lng\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("longitude %q: %w", parts[1], err)
	}
	return &application.CoordinateDTO{Lat: lat, Lng: lng}, nil
}

func init() {
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "navigation app key (see \"navlink targets\")")
	buildCmd.Flags().StringVar(&buildDest, "dest", "", "destination as \"lat,lng\"")
	buildCmd.Flags().BoolVar(&buildRoute, "route", false, "request directions instead of showing a pin")
	buildCmd.Flags().StringVar(&buildStart, "start", "", "route start as \"lat,lng\" (default: current position)")
	buildCmd.Flags().StringVar(&buildTravelMode, "travel-mode", "", "driving, walking, transit or bicycling")
	buildCmd.Flags().StringVar(&buildName, "name", "", "display name for the destination pin")
	_ = buildCmd.MarkFlagRequired("target")
	_ = buildCmd.MarkFlagRequired("dest")

	rootCmd.AddCommand(buildCmd)
}
