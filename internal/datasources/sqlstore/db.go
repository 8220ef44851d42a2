package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Driver selects the SQL backend for the store.
type Driver string

const (
	// DriverMySQL targets a shared MySQL database.
	DriverMySQL Driver = "mysql"
	// DriverSQLite targets an embedded database file, suitable for
	// single-user deployments.
	DriverSQLite Driver = "sqlite"
)

const mysqlParamStr string = "?parseTime=true"

// Connect opens and verifies a database connection for the given driver.
func Connect(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch driver {
	case DriverMySQL:
		db, err = sql.Open("mysql", dsn+mysqlParamStr)
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
	case DriverSQLite:
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("opening SQLite DB: %w", err)
		}
		// The sqlite driver does not support concurrent writers.
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unknown SQL driver [%s]", driver)
	}

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking DB connection: %w", err)
	}

	return db, nil
}

func flavorFor(driver Driver) sqlbuilder.Flavor {
	if driver == DriverSQLite {
		return sqlbuilder.SQLite
	}
	return sqlbuilder.MySQL
}
