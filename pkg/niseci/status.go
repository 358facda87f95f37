package niseci

import "encoding/json"

// Status is the ecological status of a river station.
type Status int

const (
	// NoStatus means the index could not be computed.
	NoStatus Status = iota
	High
	Good
	Moderate
	Poor
	Bad
)

const (
	thresholdHigh              = float32(0.8)
	thresholdGoodAlpine        = float32(0.52)
	thresholdGoodMediterranean = float32(0.6)
	thresholdModerate          = float32(0.4)
	thresholdPoor              = float32(0.2)
)

var statusLabels = map[Status]string{
	NoStatus: "NC",
	High:     "Elevato",
	Good:     "Buono",
	Moderate: "Moderato",
	Poor:     "Scadente",
	Bad:      "Cattivo",
}

// String returns the official label of the status.
func (s Status) String() string {
	if res, ok := statusLabels[s]; ok {
		return res
	}
	return statusLabels[NoStatus]
}

// MarshalJSON encodes the status as its label, or null when there is
// no status.
func (s Status) MarshalJSON() ([]byte, error) {
	if s == NoStatus {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

// StatusOf classifies an RQE value. The threshold of the good status
// depends on the area of the station. A nil RQE gives NoStatus.
func StatusOf(rqe *float32, area Area) Status {
	if rqe == nil {
		return NoStatus
	}
	v := *rqe

	if v >= thresholdHigh {
		return High
	}

	good := thresholdGoodMediterranean
	if area == Alpine {
		good = thresholdGoodAlpine
	}
	switch {
	case v >= good:
		return Good
	case v >= thresholdModerate:
		return Moderate
	case v >= thresholdPoor:
		return Poor
	default:
		return Bad
	}
}
