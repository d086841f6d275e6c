package deeplink

// organicMapsScheme launches the Organic Maps app.
const organicMapsScheme = "om://"

// showOrganicMaps renders a pin URL with an optional label.
//
// Format: om://map?v=1&ll=<lat,lng>[&n=<name>]
//
// Parameter order is part of the app's contract: v, then ll, then n.
func showOrganicMaps(req Request) (string, error) {
	var params Params
	params.Set("v", "1")
	params.Set("ll", req.Destination.Format())
	if req.LocationName != "" {
		params.Set("n", req.LocationName)
	}
	return organicMapsScheme + "map?" + params.Encode(), nil
}

// routeOrganicMaps renders a directions URL.
//
// Format: om://route?sll=<start>&saddr=Start&dll=<dest>&daddr=End&type=<mode>
//
// The route form has no current-position placeholder, so the start
// location is mandatory. saddr and daddr carry fixed endpoint labels the
// app displays.
func routeOrganicMaps(req Request, route Route) (string, error) {
	if route.StartLocation == nil {
		return "", targetError(TargetOrganicMaps, ErrStartLocationRequired)
	}
	mode := route.TravelMode
	if mode == "" {
		mode = TravelModeDriving
	}
	key, ok := TravelModeKey(TargetOrganicMaps, mode)
	if !ok {
		return "", travelModeError(TargetOrganicMaps, mode)
	}

	var params Params
	params.Set("sll", route.StartLocation.Format())
	params.Set("saddr", "Start")
	params.Set("dll", req.Destination.Format())
	params.Set("daddr", "End")
	params.Set("type", key)
	return organicMapsScheme + "route?" + params.Encode(), nil
}
