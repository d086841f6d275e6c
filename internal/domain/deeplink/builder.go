package deeplink

import (
	"fmt"
	"strings"
)

// BuildURL renders the deeplink that opens the target for the request.
// It is a pure function of its inputs.
//
// An empty URL with a nil error means the target needs no URL: the
// platform's native map display opens system maps directly, and callers
// must treat that as success, not as a failure.
func (t Target) BuildURL(req Request) (string, error) {
	info, ok := targets[t]
	if !ok {
		return "", fmt.Errorf("unknown target: %s", t)
	}

	var (
		rawURL string
		err    error
	)
	switch mode := req.Mode.(type) {
	case ShowOnMap:
		rawURL, err = info.show(req)
	case Route:
		rawURL, err = info.route(req, mode)
	default:
		return "", fmt.Errorf("%s: unknown navigation mode %T", t, req.Mode)
	}
	if err != nil {
		return "", err
	}
	if rawURL == "" {
		return "", nil
	}
	if !hasTargetScheme(info, rawURL) {
		return "", targetError(t, ErrInvalidURL)
	}
	return rawURL, nil
}

// hasTargetScheme reports whether the URL starts with one of the
// target's scheme prefixes. net/url.Parse is no use for this check: it
// rejects the literal pipes of the Navigon format, which the app itself
// accepts.
func hasTargetScheme(info targetInfo, rawURL string) bool {
	if strings.HasPrefix(rawURL, info.scheme) {
		return true
	}
	return info.routeScheme != "" && strings.HasPrefix(rawURL, info.routeScheme)
}

// targetError wraps a build error with the target key.
func targetError(t Target, err error) error {
	return fmt.Errorf("%s: %w", t, err)
}

// travelModeError wraps ErrTravelModeUnsupported with the target key and
// the offending mode.
func travelModeError(t Target, m TravelMode) error {
	return fmt.Errorf("%s: travel mode %s: %w", t, m, ErrTravelModeUnsupported)
}
