package pointer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dimehead/npbkit/bank/config"
)

// Coerce converts raw text from the command line into a scalar node. The
// attempt order is fixed: boolean literal, null literal, integer, float,
// and finally the literal text as a string. "1" therefore becomes an
// integer and "true" a boolean, never the strings "1" or "true".
//
// Text with a leading zero ("007") skips the integer attempt so it is never
// misread as octal, mirroring the device vendor's own tooling.
func Coerce(raw string) config.Node {
	switch strings.ToLower(raw) {
	case "true":
		return config.Bool(true)
	case "false":
		return config.Bool(false)
	case "null":
		return config.Null{}
	}
	if !hasLeadingZero(raw) {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return config.Number(strconv.FormatInt(i, 10))
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if json.Valid([]byte(raw)) {
			// Already a valid JSON literal, keep the formatting.
			return config.Number(raw)
		}
		return config.Number(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return config.String(raw)
}

func hasLeadingZero(raw string) bool {
	return strings.HasPrefix(raw, "0") && raw != "0" && !strings.HasPrefix(raw, "0.")
}
