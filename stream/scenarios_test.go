package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/params"
	"log/slog"
	"strings"
	"testing"
)

func TestParseScenario(t *testing.T) {
	def := aero.ReferenceScenario()
	cases := []struct {
		line    string
		want    aero.Scenario
		wantErr bool
	}{
		{`{}`, def, false},
		{`{"pressure": 101325}`, aero.Scenario{Pressure: 101325, Temperature: 25, Height: 0.020}, false},
		{`{"pressure":75000,"temperature":-56,"height":0.5}`, aero.Scenario{Pressure: 75000, Temperature: -56, Height: 0.5}, false},
		{`{"temperature":null}`, def, false},
		{`{"temperature":"hot"}`, aero.Scenario{}, true},
		{`[1,2,3]`, aero.Scenario{}, true},
		{`{"pressure":`, aero.Scenario{}, true},
		{`98000`, aero.Scenario{}, true},
	}
	for _, c := range cases {
		got, err := ParseScenario([]byte(c.line), def)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidLine) {
				t.Errorf("%s: have %v want ErrInvalidLine", c.line, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", c.line, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: have %+v want %+v", c.line, got, c.want)
		}
	}
}

const testInput = `{"pressure":98000,"temperature":25,"height":0.02}

{"temperature":-273}
not json
{"pressure":101000,"temperature":-56}
{"height":-1}
`

func TestEvaluate_Text(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	out := new(bytes.Buffer)
	tally, err := Evaluate(context.Background(), strings.NewReader(testInput), out, params.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := Tally{Read: 5, Evaluated: 2, Rejected: 3}
	if tally != want {
		t.Errorf("have %+v want %+v", tally, want)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("have %d lines want 2: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "pressure=98000.000000 temperature=25.000000") ||
		!strings.HasSuffix(lines[0], "lift=1.7E+01 N") {
		t.Errorf("have %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "pressure=101000.000000 temperature=-56.000000") {
		t.Errorf("have %q", lines[1])
	}
}

func TestEvaluate_JSON(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	cfg := params.DefaultConfig()
	cfg.Format = params.FormatJSON
	cfg.Places = 4
	out := new(bytes.Buffer)
	if _, err := Evaluate(context.Background(), strings.NewReader(testInput), out, cfg); err != nil {
		t.Fatal(err)
	}
	dec := json.NewDecoder(out)
	n := 0
	for dec.More() {
		var rec map[string]float64
		if err := dec.Decode(&rec); err != nil {
			t.Fatal(err)
		}
		n++
		if rec["lift"] != 16.643 {
			t.Errorf("have lift %v want 16.643", rec["lift"])
		}
	}
	if n != 2 {
		t.Errorf("have %d records want 2", n)
	}
}

func TestEvaluate_Canceled(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Evaluate(ctx, strings.NewReader(testInput), new(bytes.Buffer), params.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("have %v want context.Canceled", err)
	}
}

func TestEvaluate_LongLine(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	defer func(n int) { MaxLineSize = n }(MaxLineSize)
	MaxLineSize = 64

	// Longer than both MaxLineSize and bufio's default 4096-byte buffer.
	long := `{"pressure":98000,"note":"` + strings.Repeat("x", 10_000) + `"}`
	in := `{"pressure":98000}` + "\n" + long + "\n" + `{"temperature":15}`
	out := new(bytes.Buffer)
	tally, err := Evaluate(context.Background(), strings.NewReader(in), out, params.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := Tally{Read: 3, Evaluated: 2, Rejected: 1}
	if tally != want {
		t.Errorf("have %+v want %+v", tally, want)
	}
	if n := strings.Count(out.String(), "\n"); n != 2 {
		t.Errorf("have %d result lines want 2: %q", n, out.String())
	}
}
