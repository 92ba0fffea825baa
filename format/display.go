package format

import (
	"errors"
	"fmt"
	"strings"
)

// DisplayFormat labels the standard display renderings of a phone number.
// It is carried for future formatting support only and plays no role in the
// generation path.
type DisplayFormat int

// Display renderings, in libphonenumber order.
const (
	E164 DisplayFormat = iota
	International
	National
	RFC3966
)

var displayLabels = map[DisplayFormat]string{
	E164:          "E164",
	International: "INTERNATIONAL",
	National:      "NATIONAL",
	RFC3966:       "RFC3966",
}

// ErrInvalidDisplayFormat is the sentinel for unknown display-format labels.
var ErrInvalidDisplayFormat = errors.New("phonegen: invalid display format")

// String returns the canonical label of the display format.
func (f DisplayFormat) String() string {
	if label, ok := displayLabels[f]; ok {
		return label
	}
	return fmt.Sprintf("DisplayFormat(%d)", int(f))
}

// ParseDisplayFormat parses a display-format label, case-insensitively.
func ParseDisplayFormat(label string) (DisplayFormat, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	for f, canonical := range displayLabels {
		if canonical == normalized {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDisplayFormat, label)
}
