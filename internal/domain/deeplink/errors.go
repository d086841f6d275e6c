package deeplink

import "errors"

// Builders fail with these errors when a request asks for something the
// target's URL scheme cannot express. Failing beats silently dropping a
// field: a URL that ignores the start location or travel mode would do
// something other than what the caller asked for. Errors are wrapped
// with the target key; match them with errors.Is.
var (
	// ErrRoutingUnsupported is returned for route requests to targets
	// whose deeplink scheme cannot ask for directions at all.
	ErrRoutingUnsupported = errors.New("target does not support routing")

	// ErrStartLocationUnsupported is returned when a route carries an
	// explicit start location but the target always starts from the
	// device's current position.
	ErrStartLocationUnsupported = errors.New("target does not support an explicit start location")

	// ErrStartLocationRequired is returned when a route omits the start
	// location but the target's route URL has no current-position form.
	ErrStartLocationRequired = errors.New("target requires an explicit start location")

	// ErrTravelModeUnsupported is returned when the target has no keyword
	// for the requested travel mode.
	ErrTravelModeUnsupported = errors.New("target does not support the requested travel mode")

	// ErrInvalidURL is returned when an assembled deeplink does not carry
	// the target's scheme. It guards against builder regressions and
	// should not occur with well-formed inputs.
	ErrInvalidURL = errors.New("assembled deeplink is not a valid URL")

	// ErrLaunchFailed is returned by Open when the platform launcher
	// reports that the navigation app could not be started.
	ErrLaunchFailed = errors.New("navigation app could not be launched")
)
