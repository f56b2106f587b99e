package project

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pw-tools/infra-atlas/pkg/models/store"
	"github.com/pw-tools/infra-atlas/pkg/store/duckdb"
)

// Store persists normalized project records in the DuckDB archive and
// reads them back for report derivation.
type Store interface {
	Add(ctx context.Context, records []store.ProjectRecord) error
	GetAll(ctx context.Context) ([]store.ProjectRecord, error)
	GetStats(ctx context.Context) (*store.ArchiveStats, error)
}

type projectStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &projectStore{db: db}, nil
}

func (s *projectStore) Add(ctx context.Context, records []store.ProjectRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT OR REPLACE INTO projects (
			project_id, project_name, contract_id, contractor,
			main_island, region, province, legislative_district,
			municipality, district_engineering_office, type_of_work,
			funding_year, approved_budget, contract_cost,
			start_date, actual_completion_date,
			latitude, longitude,
			provincial_capital, capital_latitude, capital_longitude
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	tx := duckdb.GetTransaction(ctx)

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.ProjectID,
			r.ProjectName,
			r.ContractID,
			r.Contractor,
			r.MainIsland,
			r.Region,
			r.Province,
			r.LegislativeDistrict,
			r.Municipality,
			r.DistrictEngineeringOffice,
			r.TypeOfWork,
			r.FundingYear,
			r.ApprovedBudget,
			r.ContractCost,
			r.StartDate,
			r.ActualCompletionDate,
			r.Latitude,
			r.Longitude,
			r.ProvincialCapital,
			r.CapitalLatitude,
			r.CapitalLongitude,
		)
		if err != nil {
			return fmt.Errorf("insert project %s: %w", r.ProjectID, err)
		}
	}

	return nil
}

func (s *projectStore) GetAll(ctx context.Context) ([]store.ProjectRecord, error) {
	query := `
		SELECT
			project_id, project_name, contract_id, contractor,
			main_island, region, province, legislative_district,
			municipality, district_engineering_office, type_of_work,
			funding_year, approved_budget, contract_cost,
			start_date, actual_completion_date,
			latitude, longitude,
			provincial_capital, capital_latitude, capital_longitude
		FROM projects
		ORDER BY funding_year, project_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var records []store.ProjectRecord
	for rows.Next() {
		var r store.ProjectRecord
		err := rows.Scan(
			&r.ProjectID,
			&r.ProjectName,
			&r.ContractID,
			&r.Contractor,
			&r.MainIsland,
			&r.Region,
			&r.Province,
			&r.LegislativeDistrict,
			&r.Municipality,
			&r.DistrictEngineeringOffice,
			&r.TypeOfWork,
			&r.FundingYear,
			&r.ApprovedBudget,
			&r.ContractCost,
			&r.StartDate,
			&r.ActualCompletionDate,
			&r.Latitude,
			&r.Longitude,
			&r.ProvincialCapital,
			&r.CapitalLatitude,
			&r.CapitalLongitude,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *projectStore) GetStats(ctx context.Context) (*store.ArchiveStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_records,
			MIN(start_date) AS earliest_start
		FROM projects`

	var stats store.ArchiveStats
	var earliest sql.NullTime
	if err := s.db.QueryRowContext(ctx, query).Scan(&stats.RecordsCount, &earliest); err != nil {
		return nil, fmt.Errorf("query archive stats: %w", err)
	}
	if earliest.Valid {
		stats.EarliestStart = &earliest.Time
	}

	return &stats, nil
}
