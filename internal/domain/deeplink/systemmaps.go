package deeplink

// showSystemMaps returns no URL: the platform's built-in maps are opened
// through the native map display API rather than a URL scheme. An empty
// URL with a nil error tells callers to take that path.
func showSystemMaps(Request) (string, error) {
	return "", nil
}

// routeSystemMaps returns no URL, like showSystemMaps. The native API
// receives the destination, name and travel mode directly.
func routeSystemMaps(Request, Route) (string, error) {
	return "", nil
}
