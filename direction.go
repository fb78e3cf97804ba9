package erfagen

import "strings"

// Direction classifies how a parameter moves data across the call
// boundary. Ret marks the synthetic slot standing in for a scalar
// return value; Unknown (the empty string) is the silent fallback for
// parameters the documentation block does not mention, such as internal
// working arrays.
type Direction string

const (
	In      Direction = "in"
	Out     Direction = "out"
	InOut   Direction = "inout"
	Ret     Direction = "ret"
	Unknown Direction = ""
)

// Matches reports whether d is one of the directions in filter, a
// "|"-separated list such as "in|inout".
func (d Direction) Matches(filter string) bool {
	for _, f := range strings.Split(filter, "|") {
		if f == string(d) {
			return true
		}
	}
	return false
}
