package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Dataset column names, as declared in the source header.
const (
	ColMainIsland                = "MainIsland"
	ColRegion                    = "Region"
	ColProvince                  = "Province"
	ColLegislativeDistrict       = "LegislativeDistrict"
	ColMunicipality              = "Municipality"
	ColDistrictEngineeringOffice = "DistrictEngineeringOffice"
	ColProjectID                 = "ProjectId"
	ColProjectName               = "ProjectName"
	ColTypeOfWork                = "TypeOfWork"
	ColFundingYear               = "FundingYear"
	ColContractID                = "ContractId"
	ColApprovedBudget            = "ApprovedBudgetForContract"
	ColContractCost              = "ContractCost"
	ColActualCompletionDate      = "ActualCompletionDate"
	ColContractor                = "Contractor"
	ColStartDate                 = "StartDate"
	ColLatitude                  = "ProjectLatitude"
	ColLongitude                 = "ProjectLongitude"
	ColProvincialCapital         = "ProvincialCapital"
	ColCapitalLatitude           = "ProvincialCapitalLatitude"
	ColCapitalLongitude          = "ProvincialCapitalLongitude"
)

const dateLayout = "2006-01-02"

var (
	// ErrInvalidNumber marks a numeric field that is empty, non-numeric,
	// or a non-finite token such as NaN or Infinity.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidDate marks a date field the date parser rejected.
	ErrInvalidDate = errors.New("invalid date")
)

// Raw is one tokenized dataset row, keyed by header column name.
type Raw map[string]string

// Source yields tokenized dataset rows. Next returns io.EOF when the
// source is exhausted.
type Source interface {
	Next(ctx context.Context) (Raw, error)
}

// Stats counts what happened to the rows of one ingestion pass.
type Stats struct {
	RowsRead int
	Dropped  int
	InRange  int
}

// NewProject validates one raw row and assembles a finished Project,
// derived fields included. Any invalid field fails the whole row; no
// partial record is ever returned.
func NewProject(raw Raw) (domain.Project, error) {
	year, err := parseYear(raw, ColFundingYear)
	if err != nil {
		return domain.Project{}, err
	}

	budget, err := parseFinite(raw, ColApprovedBudget)
	if err != nil {
		return domain.Project{}, err
	}
	cost, err := parseFinite(raw, ColContractCost)
	if err != nil {
		return domain.Project{}, err
	}
	lat, err := parseFinite(raw, ColLatitude)
	if err != nil {
		return domain.Project{}, err
	}
	lon, err := parseFinite(raw, ColLongitude)
	if err != nil {
		return domain.Project{}, err
	}
	capLat, err := parseFinite(raw, ColCapitalLatitude)
	if err != nil {
		return domain.Project{}, err
	}
	capLon, err := parseFinite(raw, ColCapitalLongitude)
	if err != nil {
		return domain.Project{}, err
	}

	start, err := parseDate(raw, ColStartDate)
	if err != nil {
		return domain.Project{}, err
	}
	completion, err := parseDate(raw, ColActualCompletionDate)
	if err != nil {
		return domain.Project{}, err
	}

	return domain.NewProject(domain.Project{
		MainIsland:                raw[ColMainIsland],
		Region:                    raw[ColRegion],
		Province:                  raw[ColProvince],
		LegislativeDistrict:       raw[ColLegislativeDistrict],
		Municipality:              raw[ColMunicipality],
		DistrictEngineeringOffice: raw[ColDistrictEngineeringOffice],
		ProjectID:                 raw[ColProjectID],
		ProjectName:               raw[ColProjectName],
		TypeOfWork:                raw[ColTypeOfWork],
		FundingYear:               year,
		ContractID:                raw[ColContractID],
		ApprovedBudget:            budget,
		ContractCost:              cost,
		Contractor:                raw[ColContractor],
		StartDate:                 start,
		ActualCompletionDate:      completion,
		Latitude:                  lat,
		Longitude:                 lon,
		ProvincialCapital:         raw[ColProvincialCapital],
		CapitalLatitude:           capLat,
		CapitalLongitude:          capLon,
	}), nil
}

// Normalize drains the source, keeping every row that survives
// normalization and the funding-year filter. Rows that fail to parse are
// skipped; they never abort the batch.
func Normalize(ctx context.Context, src Source, yearFrom, yearTo int) ([]domain.Project, Stats, error) {
	logger := zerolog.Ctx(ctx)

	var projects []domain.Project
	var stats Stats

	for {
		raw, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read dataset row: %w", err)
		}

		stats.RowsRead++

		p, err := NewProject(raw)
		if err != nil {
			stats.Dropped++
			logger.Debug().
				Err(err).
				Str("project_id", raw[ColProjectID]).
				Msg("dropping row")
			continue
		}

		if p.FundingYear < yearFrom || p.FundingYear > yearTo {
			continue
		}

		stats.InRange++
		projects = append(projects, p)
	}

	return projects, stats, nil
}

func parseFinite(raw Raw, col string) (float64, error) {
	v, err := strconv.ParseFloat(raw[col], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, col, raw[col])
	}
	return v, nil
}

func parseYear(raw Raw, col string) (int, error) {
	v, err := strconv.Atoi(raw[col])
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, col, raw[col])
	}
	return v, nil
}

func parseDate(raw Raw, col string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw[col])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrInvalidDate, col, raw[col])
	}
	return t, nil
}
