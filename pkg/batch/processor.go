package batch

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/validkit/validkit/pkg/async"
)

// expectedHeader is the only CSV layout the converter accepts.
var expectedHeader = []string{"id", "name", "price"}

// product is the JSON shape of one converted CSV row.
type product struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
}

// Processor converts CSV product exports into JSON arrays. It holds no
// per-file state and is safe for concurrent use.
type Processor struct {
	logger *slog.Logger
}

// Option is a functional option for configuring a processor.
type Option func(*Processor)

// WithLogger sets the logger for the processor.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor creates a CSV-to-JSON processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ConvertFile reads the CSV file at inputPath and writes its rows as a JSON
// array to outputPath. The header must be exactly "id,name,price"
// (ErrInvalidHeader otherwise). Rows with a wrong column count or
// unparsable id/price are skipped with a warning; they never abort the
// conversion. I/O failures are wrapped in ErrBatchFailed.
func (p *Processor) ConvertFile(ctx context.Context, inputPath, outputPath string) (err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return errors.Join(ErrBatchFailed, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Join(ErrBatchFailed, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.Join(ErrBatchFailed, closeErr)
		}
	}()

	reader := csv.NewReader(in)
	// Row length is validated per row so a malformed row skips instead of
	// failing the whole file.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%w: missing header", ErrInvalidHeader)
	}
	if !slices.Equal(header, expectedHeader) {
		return fmt.Errorf("%w: %s", ErrInvalidHeader, strings.Join(header, ","))
	}

	writer := bufio.NewWriter(out)
	if _, err := writer.WriteString("["); err != nil {
		return errors.Join(ErrBatchFailed, err)
	}

	first := true
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		line++
		if readErr != nil {
			return errors.Join(ErrBatchFailed, readErr)
		}

		prod, ok := p.parseRow(ctx, line, row)
		if !ok {
			continue
		}

		data, err := json.Marshal(prod)
		if err != nil {
			return errors.Join(ErrBatchFailed, err)
		}

		if !first {
			if _, err := writer.WriteString(","); err != nil {
				return errors.Join(ErrBatchFailed, err)
			}
		}
		if _, err := writer.Write(data); err != nil {
			return errors.Join(ErrBatchFailed, err)
		}
		if _, err := writer.WriteString("\n"); err != nil {
			return errors.Join(ErrBatchFailed, err)
		}
		first = false
	}

	if _, err := writer.WriteString("]"); err != nil {
		return errors.Join(ErrBatchFailed, err)
	}
	if err := writer.Flush(); err != nil {
		return errors.Join(ErrBatchFailed, err)
	}

	p.logger.InfoContext(ctx, "csv conversion completed",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Int("rows", line-1))
	return nil
}

// parseRow converts one CSV row into a product, reporting false for rows
// that should be skipped.
func (p *Processor) parseRow(ctx context.Context, line int, row []string) (product, bool) {
	if len(row) != len(expectedHeader) {
		p.logger.WarnContext(ctx, "skipping row with wrong column count",
			slog.Int("line", line),
			slog.Int("columns", len(row)))
		return product{}, false
	}

	id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		p.logger.WarnContext(ctx, "skipping row with non-numeric id",
			slog.Int("line", line),
			slog.String("id", row[0]))
		return product{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		p.logger.WarnContext(ctx, "skipping row with non-numeric price",
			slog.Int("line", line),
			slog.String("price", row[2]))
		return product{}, false
	}

	return product{ProductID: id, ProductName: row[1], Price: price}, true
}

// Job pairs an input CSV path with its output JSON path for ConvertFiles.
type Job struct {
	Input  string
	Output string
}

// ConvertFiles converts several files concurrently, one future per job, and
// returns the first conversion error if any.
func (p *Processor) ConvertFiles(ctx context.Context, jobs ...Job) error {
	futures := make([]*async.Future[string], len(jobs))
	for i, job := range jobs {
		futures[i] = async.Async(ctx, job, func(ctx context.Context, j Job) (string, error) {
			return j.Output, p.ConvertFile(ctx, j.Input, j.Output)
		})
	}

	_, err := async.WaitAll(futures...)
	return err
}
