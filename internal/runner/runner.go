// Package runner applies a named pipeline of Pipes to a set of input files, concurrently,
// writing one output per input.
package runner

import (
	"context"
	goerrors "errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/uuid"
	multierror "github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/thomascamminady/piper"
	"github.com/thomascamminady/piper/datasource/file"
	"github.com/thomascamminady/piper/errors"
	"github.com/thomascamminady/piper/internal/config"
	"github.com/thomascamminady/piper/internal/stats"
	iutil "github.com/thomascamminady/piper/internal/util"
	"github.com/thomascamminady/piper/logging"
	"github.com/thomascamminady/piper/pipes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result describes the processing of a single input
type Result struct {
	Input       string
	Output      string
	RowsIn      int
	RowsOut     int
	Fingerprint uint64
}

// Runner applies a pipeline of Pipes to input files
type Runner struct {
	cfg       *config.Config
	runID     uuid.UUID
	pipeNames []string
	pipes     []piper.Pipe
	stats     *stats.RunStatistics
}

// New resolves the configured Pipes and prepares a Runner
func New(cfg *config.Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	resolved, err := pipes.LookupAll(cfg.Pipes...)
	if err != nil {
		return nil, err
	}
	runID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:       cfg,
		runID:     runID,
		pipeNames: cfg.Pipes,
		pipes:     resolved,
		stats:     &stats.RunStatistics{},
	}, nil
}

// RunID identifies this Runner in logs
func (r *Runner) RunID() string {
	return r.runID.String()
}

// Statistics returns the statistics of this Runner
func (r *Runner) Statistics() piper.RuntimeStatistics {
	return r.stats
}

// ExpandInputs resolves globs into a sorted, de-duplicated list of files
func ExpandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var res []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, pkgerrors.Errorf("%s matched no files", pattern)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				res = append(res, match)
			}
		}
	}
	sort.Strings(res)
	return res, nil
}

// Run processes every input, with at most cfg.Concurrency inputs in flight. The first failure
// cancels the remaining inputs and is returned, wrapped with the name of the failing input.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Result, error) {
	if len(inputs) == 0 {
		return nil, errors.InvalidInputError{Reason: "no inputs"}
	}
	log := logging.Logger().With(zap.String("run", r.RunID()))
	r.stats.Start(len(r.pipes))
	defer r.stats.Finish()
	log.Info("starting run", zap.Strings("pipes", r.pipeNames), zap.Int("inputs", len(inputs)), zap.Int("concurrency", r.cfg.Concurrency))

	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := r.processFile(gctx, log, input)
			if err != nil {
				return pkgerrors.Wrapf(err, "%s", input)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var merr *multierror.Error
		if goerrors.As(err, &merr) {
			log.Debug("row errors", zap.String("errors", iutil.FormatMultiError(merr)))
		}
		log.Error("run failed", zap.Error(err))
		return nil, err
	}
	log.Info("finished run",
		zap.Int64("files", r.stats.GetNumFilesProcessed()),
		zap.Int64("rows_read", r.stats.GetNumRowsRead()),
		zap.Int64("rows_written", r.stats.GetNumRowsWritten()),
		zap.Duration("runtime", r.stats.GetRuntime()),
	)
	for i, name := range r.pipeNames {
		log.Debug("pipe statistics",
			zap.String("pipe", name),
			zap.Duration("runtime", r.stats.GetPipeRuntimes()[i]),
			zap.Int64("rows_removed", r.stats.GetPipeRowsRemoved()[i]),
		)
	}
	return results, nil
}

func (r *Runner) processFile(ctx context.Context, log *zap.Logger, input string) (Result, error) {
	start := time.Now()
	res := Result{Input: input}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	inFormat, err := FormatOf(r.cfg, input)
	if err != nil {
		return res, err
	}
	parser, err := parserFor(r.cfg, inFormat)
	if err != nil {
		return res, err
	}
	df, err := file.CreateChunkLoader(input).Load(parser, nil)
	if err != nil {
		return res, err
	}
	res.RowsIn = df.NumRows()

	for pidx, p := range r.pipes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		pipeStart := time.Now()
		rowsIn := df.NumRows()
		df, err = p(df)
		if err != nil {
			return res, pkgerrors.Wrapf(err, "pipe %s", r.pipeNames[pidx])
		}
		r.stats.EndPipe(pidx, time.Since(pipeStart), rowsIn, df.NumRows())
	}
	res.RowsOut = df.NumRows()
	res.Fingerprint = df.Fingerprint()

	outFormat := r.cfg.Output.Format
	if outFormat == "" {
		outFormat = inFormat
	}
	writer, err := writerFor(r.cfg, outFormat)
	if err != nil {
		return res, err
	}
	res.Output = outputPath(r.cfg, input, outFormat)
	if err := writeFile(res.Output, writer, df); err != nil {
		return res, err
	}
	r.stats.EndFile(time.Since(start), res.RowsIn, res.RowsOut)
	log.Info("processed input",
		zap.String("input", input),
		zap.String("output", res.Output),
		zap.Int("rows_in", res.RowsIn),
		zap.Int("rows_out", res.RowsOut),
		zap.Int("columns", df.NumColumns()),
		zap.Uint64("fingerprint", res.Fingerprint),
		zap.Duration("runtime", time.Since(start)),
	)
	return res, nil
}

func writeFile(path string, writer piper.DataFrameWriter, df piper.DataFrame) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writer.Write(f, df)
}
