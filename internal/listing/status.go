package listing

import (
	"math"
	"strings"
)

// Status is the availability of a listing. It only ever holds one of the
// two declared values.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
)

// Hebrew labels shown by the web client.
const (
	labelAvailable = "זמין"
	labelSold      = "נמכר"
)

// ParseStatus maps a canonical value or a localized label to a Status.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusAvailable), labelAvailable:
		return StatusAvailable, true
	case string(StatusSold), labelSold:
		return StatusSold, true
	}
	return "", false
}

// Valid reports whether s is one of the two statuses.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusSold
}

// Toggle flips available <-> sold.
func (s Status) Toggle() Status {
	if s == StatusSold {
		return StatusAvailable
	}
	return StatusSold
}

// Label returns the localized label of s.
func (s Status) Label() string {
	if s == StatusSold {
		return labelSold
	}
	return labelAvailable
}

// ValidPrice reports whether p can be stored as a listing price.
func ValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}
