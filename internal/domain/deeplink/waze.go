package deeplink

// wazeScheme launches the Waze app.
const wazeScheme = "waze://"

// showWaze renders a pin URL. Waze has no label slot, so the name is
// ignored.
//
// Format: waze://?ll=<lat,lng>
func showWaze(req Request) (string, error) {
	var params Params
	params.Set("ll", req.Destination.Format())
	return wazeScheme + "?" + params.Encode(), nil
}

// routeWaze renders a navigation URL.
//
// Format: waze://?ll=<lat,lng>&navigate=yes
//
// Waze always navigates from the current position and only by car: an
// explicit start location or a non-driving travel mode is rejected.
func routeWaze(req Request, route Route) (string, error) {
	if route.StartLocation != nil {
		return "", targetError(TargetWaze, ErrStartLocationUnsupported)
	}
	if route.TravelMode != "" && route.TravelMode != TravelModeDriving {
		return "", travelModeError(TargetWaze, route.TravelMode)
	}

	var params Params
	params.Set("ll", req.Destination.Format())
	params.Set("navigate", "yes")
	return wazeScheme + "?" + params.Encode(), nil
}
