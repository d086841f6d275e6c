package deeplink

// HERE WeGo uses one scheme for showing a location and another for
// routing.
const (
	hereLocationScheme = "here-location://"
	hereRouteScheme    = "here-route://"
)

// hereCurrentPosition is the token HERE WeGo accepts in place of start
// coordinates.
const hereCurrentPosition = "mylocation"

// showHereWeGo renders a pin URL. The scheme has no label slot, so the
// name is ignored.
//
// Format: here-location://<lat,lng>
func showHereWeGo(req Request) (string, error) {
	return hereLocationScheme + req.Destination.Format(), nil
}

// routeHereWeGo renders a directions URL.
//
// Format: here-route://<start|mylocation>/<dest>?m=<d|w|t>
//
// The start location is embedded in the path, with mylocation standing
// in when none is given. The mode parameter is always rendered and
// defaults to driving.
func routeHereWeGo(req Request, route Route) (string, error) {
	mode := route.TravelMode
	if mode == "" {
		mode = TravelModeDriving
	}
	key, ok := TravelModeKey(TargetHereWeGo, mode)
	if !ok {
		return "", travelModeError(TargetHereWeGo, mode)
	}
	start := hereCurrentPosition
	if route.StartLocation != nil {
		start = route.StartLocation.Format()
	}
	return hereRouteScheme + start + "/" + req.Destination.Format() + "?m=" + key, nil
}
