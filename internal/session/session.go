// Package session runs the interactive enc/dec/quit loop over a line-oriented reader.
//
// Each line holds a command and its arguments separated by whitespace:
//
//	enc <16 hex digits> <2 hex digits>
//	dec <16 hex digits> <2 hex digits> <1 hex digit>
//	quit
//
// Lines that match none of these are echoed back prefixed with "# :".
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/idelchi/vigsig/internal/cipher"
	"github.com/idelchi/vigsig/internal/config"
	"github.com/idelchi/vigsig/internal/trace"
)

// maxTokens is the number of whitespace-separated fields considered per line; extra fields are ignored.
const maxTokens = 4

const banner = `
vigsig: Vigenere cipher with signature
Commands:
	enc 16-hex-digits 2-hex-digits (keyword)
	dec 16-hex-digits 2-hex-digits (keyword) 1-hex-digit (signature)
	quit
`

// Options controls what a Session prints besides the results.
type Options struct {
	// Dump follows every traced block with its bit/nibble dump.
	Dump bool

	// Quiet suppresses the banner and the closing line.
	Quiet bool
}

// Session reads commands and writes their traces and results.
type Session struct {
	out     io.Writer
	opts    Options
	engine  *cipher.Engine
	printer *trace.Printer
	logger  *zap.Logger
}

// New creates a Session writing to out.
func New(out io.Writer, opts Options, logger *zap.Logger) *Session {
	printer := trace.NewPrinter(out, opts.Dump)

	return &Session{
		out:     out,
		opts:    opts,
		engine:  cipher.New(cipher.WithTracer(printer)),
		printer: printer,
		logger:  logger,
	}
}

// Run processes lines from in until "quit", end of input, or cancellation of ctx.
// Rejected requests are reported in the output and do not stop the loop.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if !s.opts.Quiet {
		if err := s.write("%s", banner); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)

	var lines int

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted: %w", err)
		}

		lines++

		quit, err := s.handle(scanner.Text())
		if err != nil {
			return err
		}

		if quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	s.logger.Debug("session finished", zap.Int("lines", lines))

	if s.opts.Quiet {
		return nil
	}

	return s.write("Goodbye\n")
}

// handle dispatches one line and reports whether the session should stop.
func (s *Session) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	items := min(len(fields), maxTokens)

	switch {
	case items == 1 && fields[0] == "quit":
		return true, nil
	case items == 3 && fields[0] == string(config.OpEncode):
		return false, s.encode(line, config.Request{Op: config.OpEncode, Text: fields[1], Keyword: fields[2]})
	case items == 4 && fields[0] == string(config.OpDecode):
		return false, s.decode(line, config.Request{
			Op:        config.OpDecode,
			Text:      fields[1],
			Keyword:   fields[2],
			Signature: fields[3],
		})
	default:
		return false, s.write("# :%s\n", line)
	}
}

func (s *Session) encode(line string, req config.Request) error {
	if err := req.Validate(); err != nil {
		s.logger.Debug("input rejected", zap.String("line", line), zap.Error(err))

		switch {
		case errors.Is(err, config.ErrInputLength):
			return s.write("Invalid input to encoder: %s %s\n  Line was: %s\n\n", req.Text, req.Keyword, line)
		case errors.Is(err, config.ErrInputDigits):
			return s.write("Invalid characters in plaintext: %s or key: %s\n", req.Text, req.Keyword)
		default:
			return err
		}
	}

	if err := trace.EncodeHeader(s.out, req.Text, req.Keyword); err != nil {
		return err
	}

	result, err := s.engine.Encode(req.Text, req.Keyword)
	if perr := s.printer.Err(); perr != nil {
		return perr
	}

	if err != nil {
		s.logger.Debug("encode rejected", zap.String("keyword", req.Keyword), zap.Error(err))

		return trace.Rejected(s.out, err)
	}

	return trace.Encoded(s.out, req.Keyword, result)
}

func (s *Session) decode(line string, req config.Request) error {
	if err := req.Validate(); err != nil {
		s.logger.Debug("input rejected", zap.String("line", line), zap.Error(err))

		switch {
		case errors.Is(err, config.ErrInputLength):
			return s.write("Invalid input to decoder: %s %s %s\n  Line was: %s\n\n",
				req.Text, req.Keyword, req.Signature, line)
		case errors.Is(err, config.ErrInputDigits):
			return s.write("Invalid decoder digits: %s or key: %s or signature %s\n",
				req.Text, req.Keyword, req.Signature)
		default:
			return err
		}
	}

	if err := trace.DecodeHeader(s.out, req.Text, req.Keyword, req.Signature); err != nil {
		return err
	}

	plaintext, err := s.engine.Decode(req.Text, req.Keyword, req.Signature)
	if perr := s.printer.Err(); perr != nil {
		return perr
	}

	if err != nil {
		s.logger.Debug("decode rejected", zap.String("keyword", req.Keyword), zap.Error(err))

		return trace.Rejected(s.out, err)
	}

	return trace.Decoded(s.out, plaintext)
}

func (s *Session) write(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
