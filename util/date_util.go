package util

import (
	"time"
)

var (
	IstLocation   = loadIst()
	DisplayLayout = "02 Jan 2006, 15:04:05 MST"
)

func loadIst() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// FormatIst renders a timestamp for the dashboard in Indian Standard Time.
func FormatIst(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(IstLocation).Format(DisplayLayout)
}
