package utils

import (
	"time"

	"github.com/iskiospa/iskio-api/models"
)

// Location is the business timezone used for "today" and reminders.
var Location = time.UTC

func SetTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	Location = loc
	return nil
}

// Now is replaced in tests.
var Now = time.Now

// Today returns the current business date as YYYY-MM-DD.
func Today() string {
	return Now().In(Location).Format(models.DateLayout)
}
