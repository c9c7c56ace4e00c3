package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wallaceicy06/go-fixedschema"
	"github.com/wallaceicy06/go-fixedschema/internal/config"
	"github.com/wallaceicy06/go-fixedschema/internal/logger"
	"github.com/wallaceicy06/go-fixedschema/internal/parallel"
	"github.com/wallaceicy06/go-fixedschema/internal/sink"
)

// errLinesFailed is returned after a decode in which some lines could not
// be decoded. Every failure has already been reported by then.
var errLinesFailed = errors.New("some lines failed to decode")

// errStopped is returned when decoding stopped before the end of the input.
var errStopped = errors.New("decoding stopped")

var (
	errLocColor = color.New(color.FgRed, color.Bold)
	errMsgColor = color.New(color.FgRed)
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [data-file...]",
		Short: "Decode fixed-width data files into records",
		Long: `Decode each line of the data files (or standard input) into a record.

Lines that cannot be decoded are reported on standard error and decoding
continues, unless --fail-fast or --max-errors says otherwise. The command
exits non-zero if any line failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runDecode(cmd.Context(), cmd, cfg, args)
		},
	}

	addSchemaFlags(cmd)
	cmd.Flags().Bool("codepoints", false, "count offsets and lengths in UTF-8 codepoints instead of bytes")
	cmd.Flags().Bool("fail-fast", false, "stop at the first line that fails to decode")
	cmd.Flags().Int("max-errors", 0, "stop after this many failed lines (0 means no limit)")
	cmd.Flags().IntP("workers", "j", 1, "decode with this many goroutines (0 means GOMAXPROCS)")
	cmd.Flags().Int("chunk-size", 1024, "lines per chunk when decoding with several workers")
	cmd.Flags().StringP("format", "f", config.FormatJSON, "output format (json, yaml, msgpack, text)")
	cmd.Flags().StringP("output", "o", "", "write records to this file instead of standard output")
	return cmd
}

// decodeStats counts the outcome of a decode run.
type decodeStats struct {
	records int
	errors  int
}

func runDecode(ctx context.Context, cmd *cobra.Command, cfg *config.Config, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.ComponentLogger("decode").With(logger.FieldRunID, uuid.NewString())

	schema, err := loadSchema(cfg)
	if err != nil {
		return err
	}
	log.Debugw("schema loaded", logger.FieldFile, cfg.Schema.Path, logger.FieldFields, schema.Len())

	out := cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		out = f
	}
	w, err := sink.New(cfg.Output.Format, out)
	if err != nil {
		return err
	}

	dec := fixedwidth.NewDecoder(schema)
	dec.SetUseCodepointIndices(cfg.Decode.Codepoints)

	if len(files) == 0 {
		files = []string{"-"}
	}

	var total decodeStats
	start := time.Now()
	for _, name := range files {
		stats, err := decodeFile(ctx, cmd, cfg, dec, w, name, total, log)
		total.records += stats.records
		total.errors += stats.errors
		if err != nil {
			_ = w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to write records")
	}

	log.Infow("decode finished",
		logger.FieldRecords, total.records,
		logger.FieldErrors, total.errors,
		logger.FieldWorkers, cfg.Decode.Workers,
		logger.FieldFormat, cfg.Output.Format,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	if total.errors > 0 {
		return errors.Wrapf(errLinesFailed, "%d of %d lines", total.errors, total.errors+total.records)
	}
	return nil
}

// decodeFile decodes one input. prior holds the counts of earlier inputs
// so --max-errors applies across the whole run.
func decodeFile(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dec *fixedwidth.Decoder, w sink.Writer, name string, prior decodeStats, log *zap.SugaredLogger) (decodeStats, error) {
	var in io.Reader = cmd.InOrStdin()
	label := "<stdin>"
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return decodeStats{}, errors.Wrap(err, "failed to open data file")
		}
		defer f.Close()
		in = f
		label = name
	}

	lr := fixedwidth.NewLineReader(in)
	var stats decodeStats
	for res, err := range decodeSeq(ctx, dec, lr.All(), cfg.Decode) {
		if err != nil {
			return stats, err
		}
		if res.Err != nil {
			stats.errors++
			reportDecodeError(cmd.ErrOrStderr(), label, res.Err, log)
			if stop(cfg.Decode, prior.errors+stats.errors) {
				return stats, errors.Wrapf(errStopped, "%s: line %d", label, res.Line)
			}
			continue
		}
		if err := w.Write(res.Record); err != nil {
			return stats, errors.Wrap(err, "failed to write record")
		}
		stats.records++
	}
	if err := lr.Err(); err != nil {
		return stats, errors.Wrapf(err, "failed to read %s", label)
	}

	log.Debugw("input decoded", logger.FieldFile, label, logger.FieldRecords, stats.records, logger.FieldErrors, stats.errors)
	return stats, nil
}

// decodeSeq picks the serial decoder for a single worker and the parallel
// one otherwise.
func decodeSeq(ctx context.Context, dec *fixedwidth.Decoder, lines iter.Seq[string], opts config.DecodeConfig) iter.Seq2[fixedwidth.Result, error] {
	if opts.Workers > 1 {
		return parallel.DecodeAll(ctx, dec, lines, parallel.Options{
			Workers:   opts.Workers,
			ChunkSize: opts.ChunkSize,
		})
	}
	return func(yield func(fixedwidth.Result, error) bool) {
		for res := range dec.DecodeAll(lines) {
			if err := ctx.Err(); err != nil {
				yield(fixedwidth.Result{}, err)
				return
			}
			if !yield(res, nil) {
				return
			}
		}
	}
}

func stop(opts config.DecodeConfig, failures int) bool {
	return opts.FailFast || (opts.MaxErrors > 0 && failures >= opts.MaxErrors)
}

func reportDecodeError(w io.Writer, label string, err error, log *zap.SugaredLogger) {
	var de *fixedwidth.DecodeError
	if !errors.As(err, &de) {
		fmt.Fprintf(w, "%s %s\n", errLocColor.Sprint(label+":"), errMsgColor.Sprint(err))
		return
	}
	msg := de.Err.Error() + " in field " + de.Variable
	switch {
	case errors.Is(de, fixedwidth.ErrTruncatedLine):
		msg += fmt.Sprintf(" (need %d, have %d)", de.Needed, de.Actual)
	case errors.Is(de, fixedwidth.ErrTypeMismatch):
		msg += fmt.Sprintf(": cannot decode %q as integer", de.Value)
	}
	fmt.Fprintf(w, "%s %s\n", errLocColor.Sprintf("%s:%d:", label, de.Line), errMsgColor.Sprint(msg))

	log.Debugw("line failed",
		logger.FieldFile, label,
		logger.FieldLine, de.Line,
		logger.FieldVariable, de.Variable,
		logger.FieldError, de.Err.Error())
}
