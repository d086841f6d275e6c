package application

import (
	"fmt"

	"github.com/navlink-io/navlink/internal/domain/deeplink"
	"go.uber.org/zap"
)

// Navigation modes accepted by the transport layers.
const (
	ModeShow  = "show"
	ModeRoute = "route"
)

// CoordinateDTO carries a lat/lng pair in request and response bodies.
type CoordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BuildLinkRequest holds the data needed to build a deeplink.
type BuildLinkRequest struct {
	Target      string         `json:"target" binding:"required"`
	Mode        string         `json:"mode" binding:"required,oneof=show route"`
	Destination *CoordinateDTO `json:"destination" binding:"required"`
	Start       *CoordinateDTO `json:"start"`
	TravelMode  string         `json:"travel_mode"`
	Name        string         `json:"name"`
}

// LinkDTO is the response representation of a built deeplink.
type LinkDTO struct {
	Target        string `json:"target"`
	TargetName    string `json:"target_name"`
	URL           string `json:"url,omitempty"`
	NativeDisplay bool   `json:"native_display"`
}

// TargetDTO is the response representation of a navigation app and its
// capabilities.
type TargetDTO struct {
	ID                    int      `json:"id"`
	Key                   string   `json:"key"`
	Name                  string   `json:"name"`
	Scheme                string   `json:"scheme,omitempty"`
	SupportsRouting       bool     `json:"supports_routing"`
	SupportsStartLocation bool     `json:"supports_start_location"`
	TravelModes           []string `json:"travel_modes"`
}

// LinkService is the application service orchestrating deeplink use cases.
type LinkService struct {
	logger *zap.Logger
}

// NewLinkService creates a new LinkService.
func NewLinkService(logger *zap.Logger) *LinkService {
	return &LinkService{logger: logger}
}

// BuildLink validates the transport request and renders the deeplink for
// the chosen target. Unsupported target/request combinations surface the
// deeplink package's sentinel errors untouched so transports can map them.
func (s *LinkService) BuildLink(req BuildLinkRequest) (*LinkDTO, error) {
	target, err := deeplink.ParseTarget(req.Target)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	if req.Destination == nil {
		return nil, NewValidationError("destination is required")
	}

	mode, err := buildNavigationMode(req)
	if err != nil {
		return nil, err
	}

	destination := deeplink.Coordinate{Lat: req.Destination.Lat, Lng: req.Destination.Lng}
	rawURL, err := target.BuildURL(deeplink.NewRequest(destination, mode, req.Name))
	if err != nil {
		return nil, err
	}

	s.logger.Info("deeplink built",
		zap.String("target", target.String()),
		zap.String("mode", req.Mode),
		zap.Bool("native_display", rawURL == ""),
	)

	return &LinkDTO{
		Target:        target.String(),
		TargetName:    target.DisplayName(),
		URL:           rawURL,
		NativeDisplay: rawURL == "",
	}, nil
}

// ListTargets returns every supported navigation app with its capabilities.
func (s *LinkService) ListTargets() []TargetDTO {
	targets := deeplink.Targets()
	result := make([]TargetDTO, 0, len(targets))
	for _, t := range targets {
		result = append(result, toTargetDTO(t))
	}
	return result
}

// GetTarget returns one navigation app by its key.
func (s *LinkService) GetTarget(key string) (*TargetDTO, error) {
	target, err := deeplink.ParseTarget(key)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("target not found: %s", key))
	}

	result := toTargetDTO(target)
	return &result, nil
}

// --- Helpers ---

// buildNavigationMode maps the transport mode fields onto the domain's
// navigation mode union. Route-only fields on a show request are rejected
// here; they have no domain representation.
func buildNavigationMode(req BuildLinkRequest) (deeplink.NavigationMode, error) {
	switch req.Mode {
	case ModeShow:
		if req.Start != nil {
			return nil, NewValidationError("start is only valid for route requests")
		}
		if req.TravelMode != "" {
			return nil, NewValidationError("travel_mode is only valid for route requests")
		}
		return deeplink.ShowOnMap{}, nil

	case ModeRoute:
		var route deeplink.Route
		if req.TravelMode != "" {
			travelMode, err := deeplink.ParseTravelMode(req.TravelMode)
			if err != nil {
				return nil, NewValidationError(err.Error())
			}
			route.TravelMode = travelMode
		}
		if req.Start != nil {
			route.StartLocation = &deeplink.Coordinate{Lat: req.Start.Lat, Lng: req.Start.Lng}
		}
		return route, nil

	default:
		return nil, NewValidationError(fmt.Sprintf("invalid mode: %s", req.Mode))
	}
}

// toTargetDTO maps a target's static data to its response representation.
func toTargetDTO(t deeplink.Target) TargetDTO {
	modes := t.AvailableTravelModes()
	modeKeys := make([]string, 0, len(modes))
	for _, m := range modes {
		modeKeys = append(modeKeys, m.String())
	}

	return TargetDTO{
		ID:                    t.ID(),
		Key:                   t.String(),
		Name:                  t.DisplayName(),
		Scheme:                t.Scheme(),
		SupportsRouting:       t.SupportsRouting(),
		SupportsStartLocation: t.SupportsStartLocationInRoute(),
		TravelModes:           modeKeys,
	}
}
