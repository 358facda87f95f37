package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in creation order.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Evaluation{},
		&SpeciesMetric{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	res := make([]any, len(models))
	for i := range models {
		res[i] = models[i]
	}
	return db.AutoMigrate(res...)
}

// DDL returns every statement needed to create the archive tables
// without GORM.
func DDL() []string {
	var res []string
	for _, m := range AllModels() {
		res = append(res, m.TableDDL())
		res = append(res, m.IndexDDL()...)
	}
	return res
}
