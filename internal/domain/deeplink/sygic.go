package deeplink

import "strings"

// sygicScheme launches the Sygic app.
const sygicScheme = "com.sygic.aura://"

// sygicSeparator joins the positional fields of a Sygic URL. The app
// parses the percent-encoded pipe, not the literal character.
const sygicSeparator = "%7C"

// showSygic renders a pin URL.
//
// Format: com.sygic.aura://coordinate%7C<lng>%7C<lat>[%7C<name>]%7Cshow
//
// Longitude comes before latitude, and the optional name slots in before
// the terminal action keyword.
func showSygic(req Request) (string, error) {
	return sygicURL(req, "show"), nil
}

// routeSygic renders a directions URL. The travel-mode keyword replaces
// show as the terminal action.
//
// Format: com.sygic.aura://coordinate%7C<lng>%7C<lat>[%7C<name>]%7C<drive|walk>
//
// Sygic always routes from the current position; an explicit start
// location is rejected.
func routeSygic(req Request, route Route) (string, error) {
	if route.StartLocation != nil {
		return "", targetError(TargetSygic, ErrStartLocationUnsupported)
	}
	mode := route.TravelMode
	if mode == "" {
		mode = TravelModeDriving
	}
	action, ok := TravelModeKey(TargetSygic, mode)
	if !ok {
		return "", travelModeError(TargetSygic, mode)
	}
	return sygicURL(req, action), nil
}

// sygicURL assembles the pipe-delimited coordinate URL with the given
// terminal action.
func sygicURL(req Request, action string) string {
	fields := []string{
		"coordinate",
		FormatAngle(req.Destination.Lng),
		FormatAngle(req.Destination.Lat),
	}
	if req.LocationName != "" {
		fields = append(fields, req.LocationName)
	}
	fields = append(fields, action)
	return sygicScheme + strings.Join(fields, sygicSeparator)
}
