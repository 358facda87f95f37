// Package schema provides archive models of gnfish. The same models
// create SQLite tables from their ddl tags and PostgreSQL tables with
// GORM AutoMigrate.
package schema

import (
	"time"

	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfmt"
)

// DDLGenerator defines how Go models generate SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Evaluation is one archived index computation of a station.
type Evaluation struct {
	// ID is UUID v5 generated from the index, station code and survey
	// date. Evaluating a station again keeps the same ID.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`

	// RunID is the UUID of the run that stored the evaluation.
	RunID string `db:"run_id" ddl:"TEXT NOT NULL"`

	// IndexName is either NISECI or HFBI.
	IndexName string `db:"index_name" ddl:"TEXT NOT NULL"`

	StationCode string `db:"station_code" ddl:"TEXT NOT NULL"`
	WaterBody   string `db:"water_body" ddl:"TEXT"`
	Region      string `db:"region" ddl:"TEXT"`
	Province    string `db:"province" ddl:"TEXT"`

	// SurveyDate in dd/mm/yyyy format.
	SurveyDate string `db:"survey_date" ddl:"TEXT NOT NULL"`

	// Value is NULL when the index is undefined.
	Value *float32 `db:"value" ddl:"REAL"`

	// RQE is only set for NISECI.
	RQE *float32 `db:"rqe" ddl:"REAL"`

	Status *string `db:"status" ddl:"TEXT"`

	// Metrics are the intermediate values encoded as JSON.
	Metrics string `db:"metrics" ddl:"TEXT"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL"`
}

// SpeciesMetric keeps per-species values of a NISECI evaluation.
type SpeciesMetric struct {
	EvaluationID string `db:"evaluation_id" ddl:"TEXT NOT NULL" gorm:"primaryKey"`
	SpeciesID    string `db:"species_id" ddl:"TEXT NOT NULL" gorm:"primaryKey"`
	Name         string `db:"name" ddl:"TEXT"`

	// Class1 to Class5 are counts of individuals per length class.
	Class1 uint32 `db:"class1" ddl:"INTEGER"`
	Class2 uint32 `db:"class2" ddl:"INTEGER"`
	Class3 uint32 `db:"class3" ddl:"INTEGER"`
	Class4 uint32 `db:"class4" ddl:"INTEGER"`
	Class5 uint32 `db:"class5" ddl:"INTEGER"`

	// Ratio is the adult/juvenile ratio.
	Ratio *float32 `db:"ratio" ddl:"REAL"`

	CriterionA uint8   `db:"criterion_a" ddl:"SMALLINT"`
	CriterionB uint8   `db:"criterion_b" ddl:"SMALLINT"`
	ScoreB     float32 `db:"score_b" ddl:"REAL"`
	Quantity   uint32  `db:"quantity" ddl:"INTEGER"`

	// Density is individuals per square meter.
	Density *float32 `db:"density" ddl:"REAL"`
}

// FromReport converts an evaluation into archive rows.
func FromReport(
	runID string,
	ev report.Evaluation,
	created time.Time,
) (Evaluation, []SpeciesMetric, error) {
	enc := gnfmt.GNjson{}
	metrics, err := enc.Encode(ev.Metrics)
	if err != nil {
		return Evaluation{}, nil, err
	}

	res := Evaluation{
		ID:          ev.ID,
		RunID:       runID,
		IndexName:   string(ev.Index),
		StationCode: ev.StationCode,
		WaterBody:   ev.WaterBody,
		Region:      ev.Location.Region,
		Province:    ev.Location.Province,
		SurveyDate:  ev.Date,
		Value:       ev.Value,
		RQE:         ev.RQE,
		Status:      ev.Status,
		Metrics:     string(metrics),
		CreatedAt:   created,
	}

	species := make([]SpeciesMetric, len(ev.Species))
	for i, v := range ev.Species {
		species[i] = SpeciesMetric{
			EvaluationID: ev.ID,
			SpeciesID:    v.SpeciesID,
			Name:         v.Name,
			Class1:       v.Classes[0],
			Class2:       v.Classes[1],
			Class3:       v.Classes[2],
			Class4:       v.Classes[3],
			Class5:       v.Classes[4],
			Ratio:        v.Ratio,
			CriterionA:   v.CriterionA,
			CriterionB:   v.CriterionB,
			ScoreB:       v.ScoreB,
			Quantity:     v.Quantity,
			Density:      v.Density,
		}
	}
	return res, species, nil
}
