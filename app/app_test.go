package app

import (
	"bytes"
	"errors"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/params"
	"github.com/rotblauer/airfoil/uncertain"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

func TestRun_Reference(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	cfg := params.DefaultConfig()
	buf := new(bytes.Buffer)
	sampler := &uncertain.Fixed{Values: []float64{88.123456789, -1.5}}
	if err := Run(buf, cfg.Model, cfg.Scenario, cfg.Ranges, sampler); err != nil {
		t.Fatal(err)
	}
	want := "Lift Force is (F)\t\t= 1.7E+01 N\n" +
		"UnCertainity Pressure = 88.123457\n" +
		"Uncertainity Tempreture = -1.500000\n"
	if got := buf.String(); got != want {
		t.Errorf("have\n%q\nwant\n%q", got, want)
	}
}

func TestRun_Uniform(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	cfg := params.DefaultConfig()
	re := regexp.MustCompile(`^Lift Force is \(F\)\t\t= (\d)\.(\d)E([+-]\d\d) N
UnCertainity Pressure = (\d+\.\d{6})
Uncertainity Tempreture = (-?\d+\.\d{6})
$`)
	for seed := uint64(1); seed <= 20; seed++ {
		buf := new(bytes.Buffer)
		if err := Run(buf, cfg.Model, cfg.Scenario, cfg.Ranges, uncertain.NewUniform(seed)); err != nil {
			t.Fatal(err)
		}
		m := re.FindStringSubmatch(buf.String())
		if m == nil {
			t.Fatalf("seed %d: unexpected output %q", seed, buf.String())
		}
		if mantissa, exponent := m[1]+"."+m[2], m[3]; mantissa != "1.7" || exponent != "+01" {
			t.Errorf("have %sE%s want 1.7E+01", mantissa, exponent)
		}
	}
}

func TestRun_DomainError(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError)()
	cfg := params.DefaultConfig()
	cfg.Scenario.Temperature = -273
	buf := new(bytes.Buffer)
	err := Run(buf, cfg.Model, cfg.Scenario, cfg.Ranges, &uncertain.Fixed{})
	if !errors.Is(err, aero.ErrDomain) {
		t.Fatalf("have %v want ErrDomain", err)
	}
	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("have output %q want none", buf.String())
	}
}
