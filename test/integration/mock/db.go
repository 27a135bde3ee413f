// Package mock provides in-memory infrastructure for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khazna-app/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps the shared in-memory test database.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory SQLite database and migrates the schema.
// The catch-up audit table stays out of the migration because its text[]
// column is PostgreSQL-only; tests pass a nil audit repository instead.
func NewDb() *Db {
	if db == nil {
		dbOnce.Do(func() {
			db = open()
		})
	}
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := []any{
		&model.UserModel{},
		&model.SettingsModel{},
		&model.TransactionModel{},
		&model.RecurringExpenseModel{},
		&model.BudgetModel{},
		&model.ProjectModel{},
		&model.DisbursementSheetModel{},
		&model.DisbursementRecordModel{},
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset deletes every row so each scenario starts from an empty ledger.
func (d *Db) Reset() error {
	session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range d.models {
		if err := session.Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
