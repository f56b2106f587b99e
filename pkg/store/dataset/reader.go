package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pw-tools/infra-atlas/pkg/services/ingest"
)

// Reader streams tokenized rows from a dataset CSV. Fields are mapped by
// the header, so column order in the file does not matter. Rows with a
// mismatched field count are skipped, mirroring the per-record skip
// policy of the normalizer.
type Reader struct {
	csv    *csv.Reader
	header []string
	closer io.Closer
}

// Open opens the dataset file at path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader wraps an already-open CSV stream. The header is consumed
// immediately.
func NewReader(src io.Reader) (*Reader, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	return &Reader{csv: cr, header: header}, nil
}

// Next yields the next row keyed by header column, or io.EOF when the
// dataset is exhausted.
func (r *Reader) Next(ctx context.Context) (ingest.Raw, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			// Structurally broken line; skip it like any other bad row.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if len(fields) != len(r.header) {
			continue
		}

		raw := make(ingest.Raw, len(r.header))
		for i, col := range r.header {
			raw[col] = fields[i]
		}
		return raw, nil
	}
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
