package deeplink

import "fmt"

// Target identifies one of the supported navigation apps.
type Target string

const (
	TargetGoogleMaps  Target = "google_maps"
	TargetOrganicMaps Target = "organic_maps"
	TargetWaze        Target = "waze"
	TargetSygic       Target = "sygic"
	TargetHereWeGo    Target = "here_wego"
	TargetNavigon     Target = "navigon"
	TargetMapsMe      Target = "maps_me"
	TargetSystemMaps  Target = "system_maps"
)

// targetInfo is the static data a target's builders and capability
// queries read from.
type targetInfo struct {
	id                    int
	name                  string
	scheme                string
	routeScheme           string // set when route URLs use a different scheme than show URLs
	supportsRouting       bool
	supportsStartLocation bool
	show                  func(Request) (string, error)
	route                 func(Request, Route) (string, error)
}

// targets is the registry of supported navigation apps. IDs are stable
// and double as the presentation order. System maps have no scheme: they
// are launched through the native map display, not a URL.
var targets = map[Target]targetInfo{
	TargetGoogleMaps: {
		id:                    1,
		name:                  "Google Maps",
		scheme:                googleMapsScheme,
		supportsRouting:       true,
		supportsStartLocation: true,
		show:                  showGoogleMaps,
		route:                 routeGoogleMaps,
	},
	TargetOrganicMaps: {
		id:                    2,
		name:                  "Organic Maps",
		scheme:                organicMapsScheme,
		supportsRouting:       true,
		supportsStartLocation: true,
		show:                  showOrganicMaps,
		route:                 routeOrganicMaps,
	},
	TargetWaze: {
		id:                    3,
		name:                  "Waze",
		scheme:                wazeScheme,
		supportsRouting:       true,
		supportsStartLocation: false,
		show:                  showWaze,
		route:                 routeWaze,
	},
	TargetSygic: {
		id:                    4,
		name:                  "Sygic",
		scheme:                sygicScheme,
		supportsRouting:       true,
		supportsStartLocation: false,
		show:                  showSygic,
		route:                 routeSygic,
	},
	TargetHereWeGo: {
		id:                    5,
		name:                  "HERE WeGo",
		scheme:                hereLocationScheme,
		routeScheme:           hereRouteScheme,
		supportsRouting:       true,
		supportsStartLocation: true,
		show:                  showHereWeGo,
		route:                 routeHereWeGo,
	},
	TargetNavigon: {
		id:                    6,
		name:                  "Navigon",
		scheme:                navigonScheme,
		supportsRouting:       true,
		supportsStartLocation: false,
		show:                  showNavigon,
		route:                 routeNavigon,
	},
	TargetMapsMe: {
		id:                    7,
		name:                  "maps.me",
		scheme:                mapsMeScheme,
		supportsRouting:       false,
		supportsStartLocation: false,
		show:                  showMapsMe,
		route:                 routeMapsMe,
	},
	TargetSystemMaps: {
		id:                    8,
		name:                  "System Maps",
		supportsRouting:       true,
		supportsStartLocation: false,
		show:                  showSystemMaps,
		route:                 routeSystemMaps,
	},
}

// targetOrder lists all targets by ascending ID.
var targetOrder = []Target{
	TargetGoogleMaps,
	TargetOrganicMaps,
	TargetWaze,
	TargetSygic,
	TargetHereWeGo,
	TargetNavigon,
	TargetMapsMe,
	TargetSystemMaps,
}

// IsValid returns true if the target is a recognized navigation app.
func (t Target) IsValid() bool {
	_, exists := targets[t]
	return exists
}

// String returns the string key of the target.
func (t Target) String() string {
	return string(t)
}

// ParseTarget converts a string key to a Target, returning an error if unknown.
func ParseTarget(s string) (Target, error) {
	target := Target(s)
	if !target.IsValid() {
		return "", fmt.Errorf("unknown target: %s", s)
	}
	return target, nil
}

// Targets returns all supported targets in ascending ID order.
func Targets() []Target {
	ts := make([]Target, len(targetOrder))
	copy(ts, targetOrder)
	return ts
}

// ID returns the target's stable numeric identifier, or 0 for an
// unknown target. Capability accessors do not validate their input.
func (t Target) ID() int {
	return targets[t].id
}

// DisplayName returns the human-readable app name.
func (t Target) DisplayName() string {
	return targets[t].name
}

// Scheme returns the prefix the target's deeplinks start with, or ""
// for targets launched without a URL.
func (t Target) Scheme() string {
	return targets[t].scheme
}

// RouteScheme returns the distinct prefix of the target's route URLs,
// or "" when route and show URLs share Scheme.
func (t Target) RouteScheme() string {
	return targets[t].routeScheme
}

// SupportsRouting returns true if the target's deeplinks can request
// directions at all.
func (t Target) SupportsRouting() bool {
	return targets[t].supportsRouting
}

// SupportsStartLocationInRoute returns true if a route deeplink can
// carry an explicit start location. Organic Maps goes further and
// requires one; Navigon accepts route requests but silently drops the
// start, so it reports false.
func (t Target) SupportsStartLocationInRoute() bool {
	return targets[t].supportsStartLocation
}
