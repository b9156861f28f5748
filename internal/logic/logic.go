// Package logic implements the orchestration behind each command.
package logic

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/idelchi/vigsig/internal/batch"
	"github.com/idelchi/vigsig/internal/cipher"
	"github.com/idelchi/vigsig/internal/config"
	"github.com/idelchi/vigsig/internal/fileutil"
	"github.com/idelchi/vigsig/internal/logging"
	"github.com/idelchi/vigsig/internal/session"
	"github.com/idelchi/vigsig/internal/trace"
)

// RunEncrypt encrypts and signs the block in cfg.Request and writes the result line to out.
// A rejected keyword is reported on out and returned as an error.
func RunEncrypt(cfg *config.Config, out io.Writer) error {
	return withLogger(cfg, func(logger *zap.Logger) error {
		req := cfg.Request
		req.Op = config.OpEncode

		if err := req.Validate(); err != nil {
			return fmt.Errorf("encrypting: %w", err)
		}

		engine, printer := newEngine(cfg, out)

		result, err := engine.Encode(req.Text, req.Keyword)
		if perr := printer.Err(); perr != nil {
			return perr
		}

		if err != nil {
			logger.Debug("encode rejected", zap.String("keyword", req.Keyword), zap.Error(err))

			return reject(out, "encrypting", err)
		}

		logger.Debug("encoded", zap.String("signature", result.Signature.String()))

		return trace.Encoded(out, req.Keyword, result)
	})
}

// RunDecrypt verifies and decrypts the block in cfg.Request and writes the plaintext to out.
// An untrusted message or rejected keyword is reported on out and returned as an error.
func RunDecrypt(cfg *config.Config, out io.Writer) error {
	return withLogger(cfg, func(logger *zap.Logger) error {
		req := cfg.Request
		req.Op = config.OpDecode

		if err := req.Validate(); err != nil {
			return fmt.Errorf("decrypting: %w", err)
		}

		engine, printer := newEngine(cfg, out)

		plaintext, err := engine.Decode(req.Text, req.Keyword, req.Signature)
		if perr := printer.Err(); perr != nil {
			return perr
		}

		if err != nil {
			logger.Debug("decode rejected", zap.String("keyword", req.Keyword), zap.Error(err))

			return reject(out, "decrypting", err)
		}

		return trace.Decoded(out, plaintext)
	})
}

// RunSession runs the interactive command loop on in and out.
func RunSession(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	return withLogger(cfg, func(logger *zap.Logger) error {
		s := session.New(out, session.Options{Dump: cfg.Dump, Quiet: cfg.Quiet}, logger)

		if err := s.Run(ctx, in); err != nil {
			return fmt.Errorf("running session: %w", err)
		}

		return nil
	})
}

// RunBatch processes the request files in cfg.Files and writes the report to out,
// or atomically to cfg.Output when set. Stats go to stderr.
func RunBatch(ctx context.Context, cfg *config.Config, out io.Writer) error {
	return withLogger(cfg, func(logger *zap.Logger) error {
		report, err := batch.NewProcessor(cfg, logger).Process(ctx, cfg.Files)
		if err != nil {
			return fmt.Errorf("running batch: %w", err)
		}

		var size int64

		if cfg.Output == "" {
			if !cfg.Quiet {
				if err := batch.WriteReport(out, report); err != nil {
					return err
				}
			}
		} else {
			size, err = fileutil.WriteAtomic(cfg.Output, func(w io.Writer) error {
				return batch.WriteReport(w, report)
			})
			if err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			logger.Info("report written", zap.String("path", cfg.Output), zap.Int64("bytes", size))
		}

		if cfg.Stats {
			batch.PrintStats(os.Stderr, report.Stats, size)
		}

		return nil
	})
}

func withLogger(cfg *config.Config, run func(*zap.Logger) error) error {
	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	defer logging.Sync(logger)

	return run(logger)
}

// newEngine returns an engine that traces to out when tracing is enabled.
func newEngine(cfg *config.Config, out io.Writer) (*cipher.Engine, *trace.Printer) {
	printer := trace.NewPrinter(out, cfg.Dump)

	if !cfg.Trace {
		return cipher.New(), printer
	}

	return cipher.New(cipher.WithTracer(printer)), printer
}

// reject reports an engine rejection on out and returns it.
func reject(out io.Writer, doing string, rejection error) error {
	if err := trace.Rejected(out, rejection); err != nil {
		return err
	}

	return fmt.Errorf("%s: %w", doing, rejection)
}
