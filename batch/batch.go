// Package batch runs a stream of command lines against a roadmap.Map.
//
// Every failing line, whether it does not parse or the map rejects it,
// produces "ERROR <n>" on the error stream with n the 1-based line number,
// and processing continues. Route descriptions go to the output stream, one
// per line. Nothing else is written.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/cityroutes/command"
	"github.com/katalvlaran/cityroutes/roadmap"
)

// DefaultBufferSize is the read buffer used when Runner.BufferSize is zero.
const DefaultBufferSize = 64 << 10

// ErrMissingNewline indicates a final line that ends at EOF instead of '\n'.
var ErrMissingNewline = errors.New("batch: line not terminated")

// Runner executes command lines. The zero value is not usable: Map, Out and
// Err must be set.
type Runner struct {
	Map *roadmap.Map
	Out io.Writer
	Err io.Writer

	// Logger receives one record per failing line. nil discards.
	Logger *slog.Logger

	// BufferSize sizes the line reader; lines may be longer.
	BufferSize int

	// RequireNewline makes an unterminated final command line fail.
	RequireNewline bool
}

// Summary counts what a Run saw.
type Summary struct {
	Lines    int `json:"lines"`
	Skipped  int `json:"skipped"`
	Executed int `json:"executed"`
	Failed   int `json:"failed"`
}

// Run reads in to EOF, executing each line. It stops early only when ctx is
// done or a stream fails; command failures are reported and skipped.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Summary, error) {
	var sum Summary
	size := r.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	br := bufio.NewReaderSize(in, size)

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return sum, fmt.Errorf("batch: read line %d: %w", sum.Lines+1, readErr)
		}
		if raw == "" && readErr != nil {
			return sum, nil
		}
		sum.Lines++
		line := strings.TrimSuffix(raw, "\n")

		if command.Skip(line) {
			sum.Skipped++
		} else {
			err := r.line(line, readErr == nil)
			if err != nil {
				var ioErr *writeError
				if errors.As(err, &ioErr) {
					return sum, ioErr.err
				}
				sum.Failed++
				log.Info("line rejected", "line", sum.Lines, "kind", kindOf(err), "err", err)
				if _, werr := fmt.Fprintf(r.Err, "ERROR %d\n", sum.Lines); werr != nil {
					return sum, werr
				}
			} else {
				sum.Executed++
			}
		}
		if readErr != nil {
			return sum, nil
		}
	}
}

// writeError marks a failure of the output stream, which ends the run.
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }

func (r *Runner) line(line string, terminated bool) error {
	if !terminated && r.RequireNewline {
		return ErrMissingNewline
	}
	cmd, err := command.Parse(line)
	if err != nil {
		return err
	}
	out, emit, err := Execute(r.Map, cmd)
	if err != nil {
		return err
	}
	if emit {
		if _, err = io.WriteString(r.Out, out+"\n"); err != nil {
			return &writeError{err}
		}
	}

	return nil
}

// Execute applies cmd to m. emit reports whether out is a line to emit.
func Execute(m *roadmap.Map, cmd command.Command) (out string, emit bool, err error) {
	switch c := cmd.(type) {
	case command.AddRoad:
		err = m.AddRoad(c.City1, c.City2, c.Length, c.Year)
	case command.RepairRoad:
		err = m.RepairRoad(c.City1, c.City2, c.Year)
	case command.RemoveRoad:
		err = m.RemoveRoad(c.City1, c.City2)
	case command.NewRoute:
		err = m.NewRoute(c.ID, c.City1, c.City2)
	case command.ExtendRoute:
		err = m.ExtendRoute(c.ID, c.City)
	case command.RemoveRoute:
		err = m.RemoveRoute(c.ID)
	case command.ExactRoute:
		err = m.ExactRoute(c.ID, c.Cities, c.Lengths, c.Years)
	case command.GetRouteDescription:
		return m.RouteDescription(c.ID), true, nil
	default:
		err = fmt.Errorf("%w: %T", command.ErrUnknownCommand, cmd)
	}

	return "", false, err
}

// kindOf names the failure class of err for logs.
func kindOf(err error) string {
	for _, e := range []error{command.ErrEmpty, command.ErrUnknownCommand, command.ErrFieldCount, command.ErrBadNumber, ErrMissingNewline} {
		if errors.Is(err, e) {
			return "syntax"
		}
	}

	return roadmap.KindOf(err).String()
}
