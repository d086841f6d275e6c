package deeplink

import "strings"

// Param is a single key=value pair of a deeplink query string.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters.
//
// url.Values renders keys in sorted order, but several navigation apps
// parse their query strings positionally (Organic Maps and maps.me fix
// the v, ll, n order), so rendering order must be exactly insertion
// order.
type Params []Param

// Set appends the pair to the list. If the key is already present its
// value is overwritten in place, keeping keys unique and order stable.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Join renders the pairs as "key=value" strings joined by sep, in
// insertion order. Values are spliced verbatim; anything that needs
// percent-encoding must be encoded before it is set.
func (p Params) Join(sep string) string {
	parts := make([]string, 0, len(p))
	for _, param := range p {
		parts = append(parts, param.Key+"="+param.Value)
	}
	return strings.Join(parts, sep)
}

// Encode renders the pairs as a standard query string separated by '&'.
func (p Params) Encode() string {
	return p.Join("&")
}
