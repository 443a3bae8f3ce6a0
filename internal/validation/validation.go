package validation

import (
	"strings"
	"time"
)

// Violations maps a field name to what is wrong with it.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// RequiredID rejects zero and negative ids. Foreign keys and display
// ordinals are all positive integers here.
func RequiredID(field string, value int, v Violations) {
	if value <= 0 {
		v[field] = "required"
	}
}

// ISODate checks the YYYY-MM-DD form offers carry; empty values are the
// caller's problem (pair with Required when the field is mandatory).
func ISODate(field, value string, v Violations) {
	if value == "" {
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		v[field] = "must_be_iso_date"
	}
}
