package deeplink

// NavigationMode selects what a deeplink should do: show a single point
// on the map, or navigate a route to it.
//
// The interface is sealed; ShowOnMap and Route are the only
// implementations. Keeping route-only fields on Route makes states like
// "show request with a start location" unrepresentable.
type NavigationMode interface {
	navigationMode()
}

// ShowOnMap displays the destination as a pin without routing.
type ShowOnMap struct{}

// Route requests directions to the destination.
//
// TravelMode may be the zero value, in which case the target app applies
// its own default. StartLocation may be nil, meaning "the device's
// current position"; how that is expressed (a sentinel token, an omitted
// parameter, or a shorter URL) differs per target.
type Route struct {
	TravelMode    TravelMode
	StartLocation *Coordinate
}

func (ShowOnMap) navigationMode() {}
func (Route) navigationMode()     {}
