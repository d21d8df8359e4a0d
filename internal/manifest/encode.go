package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// indent matches the four-space pretty print the BayLang toolchain emits.
const indent = "    "

// Encode renders v as pretty-printed JSON with no trailing newline. Slashes
// and HTML characters are written as-is so paths like "public/assets/app.js"
// stay readable.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
