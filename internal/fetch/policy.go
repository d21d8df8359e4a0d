package fetch

import "fmt"

// Policy decides how a failed download affects the caller.
type Policy string

const (
	// PolicyFail aborts the calling operation with the fetch error.
	PolicyFail Policy = "fail"
	// PolicyWarn reports a warning and leaves the destination absent, so a
	// later run retries the download.
	PolicyWarn Policy = "warn"
	// PolicyEmpty reports a warning and writes an empty placeholder file.
	PolicyEmpty Policy = "empty"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyWarn

// ParsePolicy converts a config or flag value into a Policy. An empty string
// yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "":
		return DefaultPolicy, nil
	case PolicyFail, PolicyWarn, PolicyEmpty:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown fetch policy %q: must be one of fail, warn, empty", s)
}
