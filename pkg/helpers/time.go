package helpers

import (
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

var DateFormat = "2006-01-02"

func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// Date checks that s is a calendar date as the api stores it and returns it
// in canonical form.
func Date(s string) (string, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", errors.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return t.Format(DateFormat), nil
}
