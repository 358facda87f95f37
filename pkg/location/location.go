// Package location describes where a sampling station is.
package location

import "fmt"

// Location is the administrative position of a station.
type Location struct {
	Region   string `json:"region"`
	Province string `json:"province"`
}

// String returns "Province (Region)", or whichever part is known.
func (l Location) String() string {
	switch {
	case l.Region == "" && l.Province == "":
		return ""
	case l.Province == "":
		return l.Region
	case l.Region == "":
		return l.Province
	}
	return fmt.Sprintf("%s (%s)", l.Province, l.Region)
}
