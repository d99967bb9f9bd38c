package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"listone/internal/config"
	"listone/internal/fileutil"
	"listone/internal/lineup"
	"listone/internal/logging"
	"listone/internal/playlist"
	"listone/internal/services"
)

const (
	stageParse    = "parse"
	stageAssemble = "assemble"
	stageWrite    = "write"
)

// Reorderer runs the parse, assemble, and write stages for one playlist.
type Reorderer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Result describes a completed run.
type Result struct {
	RunID   string
	Input   string
	Output  string
	Lineup  lineup.Lineup
	Written bool
	Elapsed time.Duration
}

// Count returns the number of unique channels in the result.
func (r Result) Count() int {
	return len(r.Lineup.Entries)
}

// NewReorderer binds a reorderer to the effective configuration.
func NewReorderer(cfg *config.Config, logger *slog.Logger) (*Reorderer, error) {
	if cfg == nil {
		return nil, errors.New("reorderer requires config")
	}
	return &Reorderer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "workflow"),
	}, nil
}

// Inspect parses and assembles the input playlist without writing anything.
func (r *Reorderer) Inspect(ctx context.Context) (Result, error) {
	return r.run(ctx, false)
}

// Run parses, assembles, and writes the output playlist. The output is only
// touched after the full lineup has been computed.
func (r *Reorderer) Run(ctx context.Context) (Result, error) {
	return r.run(ctx, true)
}

func (r *Reorderer) run(ctx context.Context, write bool) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:  uuid.NewString(),
		Input:  r.cfg.Paths.Input,
		Output: r.cfg.Paths.Output,
	}
	ctx = services.WithRunID(ctx, res.RunID)

	parseCtx := services.WithStage(ctx, stageParse)
	pairs, err := r.parse(parseCtx)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	assembleCtx := services.WithStage(ctx, stageAssemble)
	assembleLogger := logging.WithContext(assembleCtx, r.logger)
	res.Lineup = lineup.Assemble(pairs, assembleLogger)
	assembleLogger.Info("lineup assembled",
		logging.Int("parsed", res.Lineup.Stats.Parsed),
		logging.Int("kept", res.Lineup.Stats.Kept),
		logging.Int("duplicates", res.Lineup.Stats.Duplicates),
	)
	if !write {
		res.Elapsed = time.Since(start)
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	writeCtx := services.WithStage(ctx, stageWrite)
	if err := r.write(writeCtx, res.Lineup); err != nil {
		return res, err
	}
	res.Written = true
	res.Elapsed = time.Since(start)
	logging.WithContext(writeCtx, r.logger).Info("playlist written",
		logging.String("output", res.Output),
		logging.Int("channels", res.Count()),
		logging.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (r *Reorderer) parse(ctx context.Context) ([]playlist.Pair, error) {
	logger := logging.WithContext(ctx, r.logger)
	path := r.cfg.Paths.Input

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("input playlist not found", logging.String("input", path))
		return nil, services.Wrap(services.ErrMissingInput, "", "", fmt.Sprintf("input playlist %q not found", path), nil)
	case err != nil:
		return nil, services.Wrap(services.ErrMissingInput, "", "", fmt.Sprintf("input playlist %q cannot be opened", path), err)
	case info.IsDir():
		return nil, services.Wrap(services.ErrMissingInput, "", "", fmt.Sprintf("input playlist %q is a directory", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrMissingInput, "", "", fmt.Sprintf("input playlist %q cannot be opened", path), err)
	}
	defer file.Close()

	pairs, err := playlist.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Debug("input parsed",
		logging.String("input", path),
		logging.Int("pairs", len(pairs)),
		logging.Bool("empty", len(pairs) == 0),
	)
	return pairs, nil
}

func (r *Reorderer) write(ctx context.Context, l lineup.Lineup) error {
	path := r.cfg.Paths.Output
	pairs := l.Pairs()
	err := fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return playlist.Write(w, pairs)
	})
	if err != nil {
		logging.WithContext(ctx, r.logger).Debug("write failed", logging.String("output", path), logging.Error(err))
		return services.Wrap(services.ErrOutput, stageWrite, "", fmt.Sprintf("write %s", path), err)
	}
	return nil
}
