package archive

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/pw-tools/infra-atlas/pkg/models/store"
	"github.com/pw-tools/infra-atlas/pkg/services/ingest"
	"github.com/pw-tools/infra-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rows []map[string]string
	pos  int
}

func (s *stubSource) Next(_ context.Context) (ingest.Raw, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := ingest.Raw(s.rows[s.pos])
	s.pos++
	return row, nil
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Add(ctx context.Context, records []store.ProjectRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *mockStore) GetAll(ctx context.Context) ([]store.ProjectRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.ProjectRecord), args.Error(1)
}

func (m *mockStore) GetStats(ctx context.Context) (*store.ArchiveStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*store.ArchiveStats), args.Error(1)
}

func archivedRecord(id string, year int, region string) store.ProjectRecord {
	start := time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC)
	return store.ProjectRecord{
		ProjectID:            id,
		ContractID:           "C-" + id,
		Contractor:           "ACME",
		MainIsland:           "Luzon",
		Region:               region,
		TypeOfWork:           "Flood Control",
		FundingYear:          year,
		ApprovedBudget:       1200,
		ContractCost:         1000,
		StartDate:            start,
		ActualCompletionDate: start.AddDate(0, 0, 20),
	}
}

func TestService_Regional(t *testing.T) {
	ctx := context.Background()
	s := report.DefaultSettings()

	t.Run("derives from the filtered archive", func(t *testing.T) {
		ms := new(mockStore)
		ms.On("GetAll", ctx).Return([]store.ProjectRecord{
			archivedRecord("P-1", 2022, "R1"),
			archivedRecord("P-2", 2019, "R2"), // outside the covered years
		}, nil)

		svc := NewService(ms, s)
		rows, err := svc.Regional(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "R1", rows[0].Region)
		// Derived fields recomputed from the archived dates.
		assert.InDelta(t, 20, rows[0].AvgDelay, 1e-9)
		ms.AssertExpectations(t)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ms := new(mockStore)
		ms.On("GetAll", ctx).Return([]store.ProjectRecord(nil), assert.AnError)

		svc := NewService(ms, s)
		_, err := svc.Regional(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	ms := new(mockStore)
	ms.On("GetAll", ctx).Return([]store.ProjectRecord{
		archivedRecord("P-1", 2021, "R1"),
		archivedRecord("P-2", 2022, "R1"),
	}, nil)

	svc := NewService(ms, report.DefaultSettings())
	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalProjects)
	assert.Equal(t, 2, sum.TotalContractors)
	assert.InDelta(t, 400, sum.TotalSavings, 1e-9)
}

func TestService_Ingest(t *testing.T) {
	ctx := context.Background()
	ms := new(mockStore)
	ms.On("Add", ctx, mock.MatchedBy(func(records []store.ProjectRecord) bool {
		return len(records) == 1 && records[0].ProjectID == "P-1"
	})).Return(nil)

	svc := NewService(ms, report.DefaultSettings())

	src := &stubSource{rows: []map[string]string{{
		"MainIsland": "Luzon", "Region": "R1", "ProjectId": "P-1",
		"TypeOfWork": "Flood Control", "FundingYear": "2022", "ContractId": "C-1",
		"ApprovedBudgetForContract": "1200", "ContractCost": "1000",
		"ActualCompletionDate": "2023-02-01", "Contractor": "ACME",
		"StartDate": "2023-01-01", "ProjectLatitude": "14.5", "ProjectLongitude": "121.0",
		"ProvincialCapital": "Manila", "ProvincialCapitalLatitude": "14.6",
		"ProvincialCapitalLongitude": "121.0",
	}}}

	stats, err := svc.Ingest(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.InRange)
	ms.AssertExpectations(t)
}
