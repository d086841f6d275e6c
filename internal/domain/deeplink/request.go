package deeplink

import (
	"net/url"
	"strings"
)

// Request is a normalized navigation request, independent of any target.
type Request struct {
	Destination  Coordinate
	Mode         NavigationMode
	LocationName string
}

// NewRequest creates a Request. The display name is percent-encoded here,
// exactly once, so builders can splice it into URLs verbatim; an empty
// name stays empty and is omitted from URLs entirely.
func NewRequest(destination Coordinate, mode NavigationMode, name string) Request {
	return Request{
		Destination:  destination,
		Mode:         mode,
		LocationName: escapeName(name),
	}
}

// escapeName percent-encodes a display name for use inside a URL
// component. Spaces become %20 rather than '+': the navigation apps parse
// the RFC 3986 form, not the form-encoding one.
func escapeName(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
