package repository

import (
	"time"

	"parade/metrics"

	"gorm.io/gorm"
)

const startedAtKey = "parade:started_at"

// RegisterQueryMetrics records the duration of every gorm operation, labelled by table
// and operation.
func RegisterQueryMetrics(db *gorm.DB) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startedAtKey, time.Now())
	}
	after := func(operation string) func(tx *gorm.DB) {
		return func(tx *gorm.DB) {
			started, ok := tx.InstanceGet(startedAtKey)
			if !ok {
				return
			}
			metrics.QueryDuration.WithLabelValues(tx.Statement.Table + ":" + operation).
				Observe(time.Since(started.(time.Time)).Seconds())
		}
	}
	callbacks := db.Callback()
	if err := callbacks.Query().Before("gorm:query").Register("metrics:before_query", before); err != nil {
		return err
	}
	if err := callbacks.Query().After("gorm:query").Register("metrics:after_query", after("query")); err != nil {
		return err
	}
	if err := callbacks.Create().Before("gorm:create").Register("metrics:before_create", before); err != nil {
		return err
	}
	if err := callbacks.Create().After("gorm:create").Register("metrics:after_create", after("create")); err != nil {
		return err
	}
	if err := callbacks.Update().Before("gorm:update").Register("metrics:before_update", before); err != nil {
		return err
	}
	if err := callbacks.Update().After("gorm:update").Register("metrics:after_update", after("update")); err != nil {
		return err
	}
	if err := callbacks.Delete().Before("gorm:delete").Register("metrics:before_delete", before); err != nil {
		return err
	}
	return callbacks.Delete().After("gorm:delete").Register("metrics:after_delete", after("delete"))
}

// Models lists every table the application migrates.
func Models() []interface{} {
	return []interface{}{
		&Event{},
		&Category{},
		&Entry{},
		&Judge{},
		&Score{},
		&ScoreItem{},
	}
}
