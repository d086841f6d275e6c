package deeplink

// navigonScheme launches the Navigon app.
const navigonScheme = "navigon://"

// showNavigon renders the fixed eight-field pipe block Navigon parses.
//
// Format: navigon://||||||<lat>|<lng>
//
// The six leading fields are address components (street, house number
// and so on) this integration never fills; only the trailing coordinate
// pair is populated. Unlike Sygic, the pipes stay literal. The format
// has no slot for a name.
func showNavigon(req Request) (string, error) {
	return navigonURL(req), nil
}

// routeNavigon renders the same coordinate block as showNavigon; Navigon
// treats it as a navigation request. Start location and travel mode have
// no representation in the format and are ignored without error.
func routeNavigon(req Request, _ Route) (string, error) {
	return navigonURL(req), nil
}

func navigonURL(req Request) string {
	return navigonScheme + "||||||" +
		FormatAngle(req.Destination.Lat) + "|" + FormatAngle(req.Destination.Lng)
}
