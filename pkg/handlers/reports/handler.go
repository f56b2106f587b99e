package reports

import (
	"encoding/json"
	"net/http"

	"github.com/pw-tools/infra-atlas/pkg/adapters"
	"github.com/pw-tools/infra-atlas/pkg/models/api"
	"github.com/pw-tools/infra-atlas/pkg/services/archive"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc archive.Service
}

func NewHandler(svc archive.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetRegional(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, err := h.svc.Regional(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to derive regional report")
		http.Error(w, "failed to derive report", http.StatusInternalServerError)
		return
	}

	response := make([]api.RegionEfficiency, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapRegionEfficiencyDomainToApi(row))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetContractors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, err := h.svc.Contractors(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to derive contractor report")
		http.Error(w, "failed to derive report", http.StatusInternalServerError)
		return
	}

	response := make([]api.ContractorPerformance, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapContractorPerformanceDomainToApi(row))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, err := h.svc.Trends(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to derive trend report")
		http.Error(w, "failed to derive report", http.StatusInternalServerError)
		return
	}

	response := make([]api.AnnualTrend, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapAnnualTrendDomainToApi(row))
	}
	writeJSON(w, logger, response)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summary, err := h.svc.Summary(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to derive summary")
		http.Error(w, "failed to derive summary", http.StatusInternalServerError)
		return
	}
	if summary.TotalProjects == 0 {
		// Nothing in the covered years; an empty working set is a
		// successful no-op, not an error.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, logger, adapters.MapSummaryDomainToApi(summary))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
