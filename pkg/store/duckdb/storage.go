package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProjectTableSchema = `
	CREATE TABLE IF NOT EXISTS projects (
		project_id VARCHAR NOT NULL,
		project_name VARCHAR,
		contract_id VARCHAR,
		contractor VARCHAR,
		main_island VARCHAR,
		region VARCHAR,
		province VARCHAR,
		legislative_district VARCHAR,
		municipality VARCHAR,
		district_engineering_office VARCHAR,
		type_of_work VARCHAR,
		funding_year INTEGER NOT NULL,
		approved_budget DOUBLE,
		contract_cost DOUBLE,
		start_date DATE,
		actual_completion_date DATE,
		latitude DOUBLE,
		longitude DOUBLE,
		provincial_capital VARCHAR,
		capital_latitude DOUBLE,
		capital_longitude DOUBLE,
		PRIMARY KEY (project_id)
	);
`

var bootQueries = []string{
	ProjectTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the archive database and applies the boot
// schema.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}

type txKey struct{}

// WithTransaction makes tx available to stores further down the call
// chain.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTransaction returns the transaction carried by ctx, or nil.
func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
