package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in declaration order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Evaluation DDL methods
func (e Evaluation) TableDDL() string {
	return generateDDL(e, e.TableName())
}

func (e Evaluation) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_evaluations_station " +
			"ON evaluations(station_code, survey_date);",
		"CREATE INDEX IF NOT EXISTS idx_evaluations_run ON evaluations(run_id);",
	}
}

func (e Evaluation) TableName() string {
	return "evaluations"
}

// SpeciesMetric DDL methods
func (s SpeciesMetric) TableDDL() string {
	ddl := generateDDL(s, s.TableName())
	pk := ",\n    PRIMARY KEY (evaluation_id, species_id)\n);"
	return strings.TrimSuffix(ddl, "\n);") + pk
}

func (s SpeciesMetric) IndexDDL() []string {
	return []string{}
}

func (s SpeciesMetric) TableName() string {
	return "species_metrics"
}
