package fasterwhisper

import "fmt"

// None is the reserved string the inference script interprets as "no value
// supplied". The script distinguishes absent optionals exclusively through
// this string, not through a native nil.
const None = "None"

// sentinel renders an optional value for the script boundary: the plain
// textual rendering when present, None when absent. Every optional Config
// field crosses into the script through this function.
//
// Known ambiguity: a present value whose rendering equals "None" is
// indistinguishable from an absent one on the script side. The script
// contract does not guard against this and neither do we.
func sentinel[T any](v *T) string {
	if v == nil {
		return None
	}
	return fmt.Sprint(*v)
}
