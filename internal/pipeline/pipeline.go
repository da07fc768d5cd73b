// =============================================================================
// Triangle Accumulator - Pipeline
// =============================================================================
//
// This module orchestrates one accumulation run: ingestion, accumulation,
// formatting, emission, and optional input archival. The run either produces
// a fully written output file or fails before any byte is written; there is
// no partial-write mode.
//
// PIPELINE:
//   1. Validate the output destination (fail before reading anything)
//   2. Validate and read the input file
//   3. Accumulate the incremental records
//   4. Format the result into output lines
//   5. Write the output file
//   6. Archive the input file (optional, non-fatal)
//
// =============================================================================

package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/triangle-accumulator/internal/config"
	"github.com/ginjaninja78/triangle-accumulator/internal/reader"
	"github.com/ginjaninja78/triangle-accumulator/internal/schema"
	"github.com/ginjaninja78/triangle-accumulator/internal/triangle"
	"github.com/ginjaninja78/triangle-accumulator/internal/writer"
	"github.com/ginjaninja78/triangle-accumulator/pkg/fileutil"
)

// Result is the outcome of one accumulation run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// InputFile is the input path that was processed.
	InputFile string

	// OutputFile is the written output path.
	OutputFile string

	// ArchivedFile is the archived copy of the input, when archival is
	// enabled. Empty otherwise.
	ArchivedFile string

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one run.
type Stats struct {
	// RecordsRead is the number of incremental records ingested.
	RecordsRead int

	// Products is the number of triangles produced.
	Products int

	// ValuesAccumulated is the total number of cumulative values across
	// all products.
	ValuesAccumulated int

	// ProcessingTime is the time taken for the whole run.
	ProcessingTime time.Duration
}

// Pipeline runs accumulation jobs with one configuration and logger.
type Pipeline struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a Pipeline.
func New(cfg *config.Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes one accumulation run from inputPath to outputPath.
func (p *Pipeline) Run(inputPath, outputPath string) (*Result, error) {
	startTime := time.Now()

	result := &Result{
		RunID:     uuid.New(),
		InputFile: inputPath,
	}
	logger := p.logger.With(zap.String("run_id", result.RunID.String()))

	logger.Info("Starting accumulation run",
		zap.String("input", inputPath),
		zap.String("output", outputPath))

	// Validate the destination first: all contract checks pass before any
	// work happens, and the computed result is discarded if emission would
	// be refused anyway.
	w, err := writer.New(outputPath)
	if err != nil {
		return nil, err
	}

	r, err := reader.New(inputPath, schema.Incremental())
	if err != nil {
		return nil, err
	}

	records, err := r.Read()
	if err != nil {
		return nil, err
	}

	result.Stats.RecordsRead = len(records)
	logger.Debug("Read incremental records", zap.Int("records", len(records)))

	accumulated, err := triangle.Accumulate(records)
	if err != nil {
		return nil, fmt.Errorf("accumulation failed: %w", err)
	}

	result.Stats.Products = len(accumulated.Products())
	for _, product := range accumulated.Products() {
		result.Stats.ValuesAccumulated += len(accumulated.Values(product))
	}

	logger.Debug("Accumulated triangles",
		zap.Int("products", result.Stats.Products),
		zap.Int("min_origin_year", accumulated.MinOriginYear),
		zap.Int("n_development_years", accumulated.NDevelopmentYears))

	if err := w.Write(accumulated.Lines()); err != nil {
		return nil, err
	}

	result.OutputFile = w.Filename()
	logger.Info("Wrote accumulated output", zap.String("output", result.OutputFile))

	if p.cfg.Archive.Enabled {
		archived, err := fileutil.ArchiveCopy(inputPath, p.cfg.Archive.Dir)
		if err != nil {
			// Archival is best-effort; the output is already written.
			logger.Warn("Failed to archive input file", zap.Error(err))
		} else {
			result.ArchivedFile = archived
			logger.Debug("Archived input file", zap.String("archive", archived))
		}
	}

	result.Stats.ProcessingTime = time.Since(startTime)

	return result, nil
}

// Validate runs the ingestion checks for inputPath without writing anything
// and returns the accumulated result for inspection.
func (p *Pipeline) Validate(inputPath string) (*Result, *triangle.AccumulatedResult, error) {
	startTime := time.Now()

	result := &Result{
		RunID:     uuid.New(),
		InputFile: inputPath,
	}

	r, err := reader.New(inputPath, schema.Incremental())
	if err != nil {
		return nil, nil, err
	}

	records, err := r.Read()
	if err != nil {
		return nil, nil, err
	}

	result.Stats.RecordsRead = len(records)

	accumulated, err := triangle.Accumulate(records)
	if err != nil {
		return nil, nil, fmt.Errorf("accumulation failed: %w", err)
	}

	result.Stats.Products = len(accumulated.Products())
	for _, product := range accumulated.Products() {
		result.Stats.ValuesAccumulated += len(accumulated.Values(product))
	}
	result.Stats.ProcessingTime = time.Since(startTime)

	return result, accumulated, nil
}
