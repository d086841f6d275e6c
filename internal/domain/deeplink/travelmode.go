package deeplink

import "fmt"

// TravelMode is the requested means of travel for a route.
//
// The zero value means "not specified": builders then fall back to the
// target app's own default, which is driving everywhere it matters.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeTransit   TravelMode = "transit"
	TravelModeBicycling TravelMode = "bicycling"
)

// allTravelModes lists every travel mode in declaration order. Capability
// listings iterate this slice so their output order is stable.
var allTravelModes = []TravelMode{
	TravelModeDriving,
	TravelModeWalking,
	TravelModeTransit,
	TravelModeBicycling,
}

// travelModeKeys maps each target to the keyword its URL scheme uses for
// a travel mode. A missing entry means the target has no way to express
// that mode; builders must fail rather than substitute another one.
//
// Waze and Navigon carry no row at all: Waze only ever navigates by car
// and Navigon's URL format has no mode field.
var travelModeKeys = map[Target]map[TravelMode]string{
	TargetGoogleMaps: {
		TravelModeDriving:   "driving",
		TravelModeWalking:   "walking",
		TravelModeTransit:   "transit",
		TravelModeBicycling: "bicycling",
	},
	TargetOrganicMaps: {
		TravelModeDriving:   "vehicle",
		TravelModeWalking:   "pedestrian",
		TravelModeTransit:   "transit",
		TravelModeBicycling: "bicycle",
	},
	TargetMapsMe: {
		TravelModeDriving:   "vehicle",
		TravelModeWalking:   "pedestrian",
		TravelModeTransit:   "transit",
		TravelModeBicycling: "bicycle",
	},
	TargetSygic: {
		TravelModeDriving: "drive",
		TravelModeWalking: "walk",
	},
	TargetHereWeGo: {
		TravelModeDriving: "d",
		TravelModeWalking: "w",
		TravelModeTransit: "t",
	},
	TargetSystemMaps: {
		TravelModeDriving: "driving",
		TravelModeWalking: "walking",
		TravelModeTransit: "transit",
	},
}

// IsValid returns true if the mode is a recognized travel mode.
func (m TravelMode) IsValid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeTransit, TravelModeBicycling:
		return true
	}
	return false
}

// String returns the string representation of the travel mode.
func (m TravelMode) String() string {
	return string(m)
}

// ParseTravelMode converts a string to a TravelMode, returning an error if invalid.
func ParseTravelMode(s string) (TravelMode, error) {
	mode := TravelMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid travel mode: %s", s)
	}
	return mode, nil
}

// TravelModes returns every travel mode in declaration order.
func TravelModes() []TravelMode {
	modes := make([]TravelMode, len(allTravelModes))
	copy(modes, allTravelModes)
	return modes
}

// TravelModeKey returns the keyword the target's URL scheme uses for the
// mode. ok is false when the target cannot express the mode at all.
func TravelModeKey(t Target, m TravelMode) (string, bool) {
	keys, ok := travelModeKeys[t]
	if !ok {
		return "", false
	}
	key, ok := keys[m]
	return key, ok
}

// AvailableTravelModes returns the travel modes the target can express in
// its URLs, in declaration order. Targets without a mode field return an
// empty slice.
func (t Target) AvailableTravelModes() []TravelMode {
	modes := make([]TravelMode, 0, len(allTravelModes))
	for _, m := range allTravelModes {
		if _, ok := TravelModeKey(t, m); ok {
			modes = append(modes, m)
		}
	}
	return modes
}
