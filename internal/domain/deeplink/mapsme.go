package deeplink

// mapsMeScheme launches the maps.me app.
const mapsMeScheme = "mapswithme://"

// showMapsMe renders a pin URL with an optional label.
//
// Format: mapswithme://map?v=1&ll=<lat,lng>[&n=<name>]
//
// Parameter order is part of the app's contract: v, then ll, then n.
func showMapsMe(req Request) (string, error) {
	var params Params
	params.Set("v", "1")
	params.Set("ll", req.Destination.Format())
	if req.LocationName != "" {
		params.Set("n", req.LocationName)
	}
	return mapsMeScheme + "map?" + params.Encode(), nil
}

// routeMapsMe always fails: the maps.me deeplink scheme only shows pins.
// Travel mode and start location make no difference to the outcome.
func routeMapsMe(_ Request, _ Route) (string, error) {
	return "", targetError(TargetMapsMe, ErrRoutingUnsupported)
}
