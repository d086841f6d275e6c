package deeplink

// AppDetector reports whether a navigation app is installed on the
// device. Implementations live with the platform integration; URL
// building never consults one.
type AppDetector interface {
	IsInstalled(t Target) bool
}

// Launcher hands a finished deeplink, or a native map display request,
// to the platform.
type Launcher interface {
	// OpenURL asks the platform to open the URL and reports success.
	OpenURL(rawURL string) bool

	// OpenNativeMapDisplay opens the platform's built-in map UI for the
	// destination. The name arrives percent-encoded, as carried by the
	// request; mode is the zero value for show requests.
	OpenNativeMapDisplay(destination Coordinate, name string, mode TravelMode) bool
}

// InstalledTargets returns the supported targets the detector reports
// as installed, in ID order.
func InstalledTargets(detector AppDetector) []Target {
	installed := make([]Target, 0, len(targetOrder))
	for _, t := range targetOrder {
		if detector.IsInstalled(t) {
			installed = append(installed, t)
		}
	}
	return installed
}

// Open builds the deeplink for the request and hands it to the
// launcher. Targets without a URL go through the native map display
// path instead. A launcher refusal becomes ErrLaunchFailed; build
// errors pass through unchanged.
func Open(t Target, req Request, launcher Launcher) error {
	rawURL, err := t.BuildURL(req)
	if err != nil {
		return err
	}

	if rawURL == "" {
		var mode TravelMode
		if route, ok := req.Mode.(Route); ok {
			mode = route.TravelMode
		}
		if !launcher.OpenNativeMapDisplay(req.Destination, req.LocationName, mode) {
			return targetError(t, ErrLaunchFailed)
		}
		return nil
	}

	if !launcher.OpenURL(rawURL) {
		return targetError(t, ErrLaunchFailed)
	}
	return nil
}
