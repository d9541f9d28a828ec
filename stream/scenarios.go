package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/params"
	"github.com/rotblauer/airfoil/report"
	"github.com/tidwall/gjson"
	"io"
	"log/slog"
	"time"
)

const (
	AttrPressure    = "pressure"
	AttrTemperature = "temperature"
	AttrHeight      = "height"
)

var ErrInvalidLine = errors.New("invalid scenario line")

// MaxLineSize bounds a single line. Longer lines are skipped as invalid.
var MaxLineSize = 1024 * 1024

// Tally counts what Evaluate did with its input.
type Tally struct {
	Read      int64
	Evaluated int64
	Rejected  int64
}

// ParseScenario reads one JSON object line.
// Missing attributes take their value from defaults.
func ParseScenario(line []byte, defaults aero.Scenario) (aero.Scenario, error) {
	if !gjson.ValidBytes(line) {
		return aero.Scenario{}, fmt.Errorf("%w: not json", ErrInvalidLine)
	}
	if !gjson.ParseBytes(line).IsObject() {
		return aero.Scenario{}, fmt.Errorf("%w: not an object", ErrInvalidLine)
	}
	s := defaults
	for _, attr := range []struct {
		path string
		dst  *float64
	}{
		{AttrPressure, &s.Pressure},
		{AttrTemperature, &s.Temperature},
		{AttrHeight, &s.Height},
	} {
		v := gjson.GetBytes(line, attr.path)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if v.Type != gjson.Number {
			return aero.Scenario{}, fmt.Errorf("%w: %s is %s, want number", ErrInvalidLine, attr.path, v.Type)
		}
		*attr.dst = v.Float()
	}
	return s, nil
}

// Evaluate reads newline-delimited JSON scenarios from r and writes one
// result line per accepted scenario to w, in the configured format.
// Unparseable lines and out-of-domain scenarios are logged, counted, and skipped.
// Only read, write, and context errors stop it.
func Evaluate(ctx context.Context, r io.Reader, w io.Writer, cfg *params.Config) (Tally, error) {
	var tally Tally
	started := time.Now()
	defer func() {
		slog.Info("Batch done", "read", humanize.Comma(tally.Read),
			"evaluated", humanize.Comma(tally.Evaluated),
			"rejected", humanize.Comma(tally.Rejected),
			"running", time.Since(started).Round(time.Millisecond))
	}()

	br := bufio.NewReader(r)
	lineN := 0
	for {
		raw, tooLong, err := readLine(br, MaxLineSize)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tally, nil
			}
			return tally, err
		}
		select {
		case <-ctx.Done():
			return tally, ctx.Err()
		default:
		}
		lineN++
		if tooLong {
			tally.Read++
			tally.Rejected++
			slog.Warn("Skipping line", "line", lineN,
				"error", fmt.Errorf("%w: longer than %s", ErrInvalidLine, humanize.Bytes(uint64(MaxLineSize))))
			continue
		}
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		tally.Read++

		scenario, err := ParseScenario(line, cfg.Scenario)
		if err != nil {
			slog.Warn("Skipping line", "line", lineN, "error", err)
			tally.Rejected++
			continue
		}
		result, err := cfg.Model.Evaluate(scenario)
		if err != nil {
			if !errors.Is(err, aero.ErrDomain) {
				return tally, err
			}
			slog.Warn("Skipping scenario", "line", lineN, "error", err)
			tally.Rejected++
			continue
		}

		rec := report.Record{Scenario: scenario, Result: result}
		var out []byte
		if cfg.Format == params.FormatJSON {
			out, err = rec.JSON(cfg.Places)
			if err != nil {
				return tally, err
			}
		} else {
			out = []byte(rec.Text())
		}
		out = append(out, '\n')
		if _, err := w.Write(out); err != nil {
			return tally, err
		}
		tally.Evaluated++
	}
}

// readLine returns the next line without its terminator.
// A line longer than max is drained and reported as tooLong, with no bytes.
func readLine(br *bufio.Reader, max int) (line []byte, tooLong bool, err error) {
	for {
		frag, isPrefix, rerr := br.ReadLine()
		if rerr != nil {
			if len(line) > 0 || tooLong {
				// Unterminated last line; the error repeats on the next call.
				return line, tooLong, nil
			}
			return nil, false, rerr
		}
		if !tooLong {
			if len(line)+len(frag) > max {
				tooLong = true
				line = nil
			} else {
				line = append(line, frag...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}
