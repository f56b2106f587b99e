package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/pw-tools/infra-atlas/pkg/models/domain"
	"github.com/pw-tools/infra-atlas/pkg/models/store"
	"github.com/pw-tools/infra-atlas/pkg/services/ingest"
	"github.com/pw-tools/infra-atlas/pkg/services/pipeline"
	"github.com/pw-tools/infra-atlas/pkg/services/report"

	exportfmt "github.com/pw-tools/infra-atlas/pkg/export"
)

// Reporter outputs run results to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"number": exportfmt.FormatNumber,
		"count":  exportfmt.FormatCount,
	}
}

type runView struct {
	Stats   ingest.Stats
	From    int
	To      int
	Empty   bool
	Summary domain.Summary
	Paths   []string
}

// Run prints the outcome of a report generation run: the ingestion
// stats, the dataset summary and the files that were written.
func (c *Reporter) Run(res *pipeline.Result, s report.Settings, paths []string) error {
	tmpl := `{{count .Stats.RowsRead}} rows loaded, {{count .Stats.InRange}} filtered for {{.From}}-{{.To}}
{{if .Empty}}No projects in {{.From}}-{{.To}}, nothing to report.
{{else}}
=== Summary ===
Total Projects: {{count .Summary.TotalProjects}}
Total Contractors: {{count .Summary.TotalContractors}}
Global Avg Delay: {{number .Summary.GlobalAvgDelay}} days
Total Savings: {{number .Summary.TotalSavings}}

Reports written:
{{range .Paths}}- {{.}}
{{end}}{{end}}`

	t, err := template.New("run").Funcs(funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, runView{
		Stats:   res.Stats,
		From:    s.YearFrom,
		To:      s.YearTo,
		Empty:   res.Empty(),
		Summary: res.Summary,
		Paths:   paths,
	})
}

// Ingested prints the outcome of loading a dataset into the archive.
func (c *Reporter) Ingested(stats ingest.Stats, s report.Settings) error {
	tmpl := `{{count .Stats.RowsRead}} rows loaded, {{count .Stats.InRange}} archived for {{.From}}-{{.To}} ({{count .Stats.Dropped}} dropped)
`
	t, err := template.New("ingested").Funcs(funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, runView{Stats: stats, From: s.YearFrom, To: s.YearTo})
}

type archiveView struct {
	Stats   *store.ArchiveStats
	Summary domain.Summary
}

// Archive prints the state of the project archive together with the
// summary derived from its records.
func (c *Reporter) Archive(stats *store.ArchiveStats, summary domain.Summary) error {
	tmpl := `=== Archive ===
Records: {{count64 .Stats.RecordsCount}}
{{if .Stats.EarliestStart}}Earliest Start: {{.Stats.EarliestStart.Format "2006-01-02"}}
{{end}}
=== Summary ===
Total Projects: {{count .Summary.TotalProjects}}
Total Contractors: {{count .Summary.TotalContractors}}
Global Avg Delay: {{number .Summary.GlobalAvgDelay}} days
Total Savings: {{number .Summary.TotalSavings}}
`
	fm := funcMap()
	fm["count64"] = func(n int64) string { return exportfmt.FormatCount(int(n)) }

	t, err := template.New("archive").Funcs(fm).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, archiveView{Stats: stats, Summary: summary})
}
