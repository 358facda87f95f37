package report

import (
	"encoding/json"
	"math"

	"github.com/gnames/gnfish/pkg/location"
)

// Degenerate inputs, such as a station without surface, give NaN or
// infinite values. JSON has no literals for them, so they are written
// as the strings "NaN", "+Inf" and "-Inf".

// jsonFloat converts a value to its JSON representation. Nil stays nil.
func jsonFloat(v *float32) any {
	if v == nil {
		return nil
	}
	f := float64(*v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return *v
}

type metricJSON struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// MarshalJSON writes non-finite values as strings.
func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(metricJSON{Name: m.Name, Value: jsonFloat(m.Value)})
}

type speciesRowJSON struct {
	SpeciesID  string    `json:"speciesId"`
	Name       string    `json:"name"`
	Classes    [5]uint32 `json:"classes"`
	Ratio      any       `json:"ratio"`
	CriterionA uint8     `json:"criterionA"`
	CriterionB uint8     `json:"criterionB"`
	ScoreB     any       `json:"scoreB"`
	Quantity   uint32    `json:"quantity"`
	Density    any       `json:"density"`
}

// MarshalJSON writes non-finite values as strings.
func (s SpeciesRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(speciesRowJSON{
		SpeciesID:  s.SpeciesID,
		Name:       s.Name,
		Classes:    s.Classes,
		Ratio:      jsonFloat(s.Ratio),
		CriterionA: s.CriterionA,
		CriterionB: s.CriterionB,
		ScoreB:     jsonFloat(&s.ScoreB),
		Quantity:   s.Quantity,
		Density:    jsonFloat(s.Density),
	})
}

type evaluationJSON struct {
	ID          string            `json:"id"`
	Index       Index             `json:"index"`
	StationCode string            `json:"stationCode"`
	WaterBody   string            `json:"waterBody"`
	Location    location.Location `json:"location"`
	Date        string            `json:"date"`
	Value       any               `json:"value"`
	RQE         any               `json:"rqe"`
	Status      *string           `json:"status"`
	Metrics     []Metric          `json:"metrics"`
	Species     []SpeciesRow      `json:"species,omitempty"`
}

// MarshalJSON writes non-finite values as strings.
func (e Evaluation) MarshalJSON() ([]byte, error) {
	return json.Marshal(evaluationJSON{
		ID:          e.ID,
		Index:       e.Index,
		StationCode: e.StationCode,
		WaterBody:   e.WaterBody,
		Location:    e.Location,
		Date:        e.Date,
		Value:       jsonFloat(e.Value),
		RQE:         jsonFloat(e.RQE),
		Status:      e.Status,
		Metrics:     e.Metrics,
		Species:     e.Species,
	})
}
