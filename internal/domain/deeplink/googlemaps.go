package deeplink

// googleMapsScheme launches the Google Maps app.
const googleMapsScheme = "comgooglemaps://"

// showGoogleMaps renders a pin URL. The scheme's q parameter carries the
// coordinate and has no separate label slot, so the name is ignored.
//
// Format: comgooglemaps://?q=<lat,lng>
func showGoogleMaps(req Request) (string, error) {
	var params Params
	params.Set("q", req.Destination.Format())
	return googleMapsScheme + "?" + params.Encode(), nil
}

// routeGoogleMaps renders a directions URL.
//
// Format: comgooglemaps://?[saddr=<lat,lng>&]daddr=<lat,lng>[&directionsmode=<mode>]
//
// An omitted saddr means "current location" to the app. directionsmode
// is rendered only when the caller set a travel mode; without it the app
// defaults to driving on its own.
func routeGoogleMaps(req Request, route Route) (string, error) {
	var params Params
	if route.StartLocation != nil {
		params.Set("saddr", route.StartLocation.Format())
	}
	params.Set("daddr", req.Destination.Format())
	if route.TravelMode != "" {
		key, ok := TravelModeKey(TargetGoogleMaps, route.TravelMode)
		if !ok {
			return "", travelModeError(TargetGoogleMaps, route.TravelMode)
		}
		params.Set("directionsmode", key)
	}
	return googleMapsScheme + "?" + params.Encode(), nil
}
