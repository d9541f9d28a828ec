// Package report renders results for the console.
// The three reference lines keep their labels byte for byte, misspellings included.
package report

import (
	"encoding/json"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/rotblauer/airfoil/aero"
	"github.com/rotblauer/airfoil/common"
	"github.com/rotblauer/airfoil/uncertain"
	"github.com/shopspring/decimal"
	"io"
)

// Scientific renders a force with one fractional digit in E notation, eg. 1.7E+01 N.
func Scientific(force float64) string {
	return fmt.Sprintf("%.1E N", force)
}

func LiftLine(force float64) string {
	return "Lift Force is (F)\t\t= " + Scientific(force)
}

func PressureLine(v float64) string {
	return fmt.Sprintf("UnCertainity Pressure = %.6f", v)
}

func TemperatureLine(v float64) string {
	return fmt.Sprintf("Uncertainity Tempreture = %.6f", v)
}

// Number rounds v to places fractional digits as an exact decimal JSON number.
// Non-finite values render as null.
func Number(v float64, places int32) json.RawMessage {
	if !common.IsFinite(v) {
		return json.RawMessage("null")
	}
	return json.RawMessage(decimal.NewFromFloat(v).Round(places).String())
}

// Record is one evaluated scenario.
type Record struct {
	Scenario aero.Scenario
	Result   aero.Result
}

func (r Record) Text() string {
	return fmt.Sprintf("pressure=%.6f temperature=%.6f height=%.6f density=%.6f velocity=%.6f lift=%s",
		r.Scenario.Pressure, r.Scenario.Temperature, r.Scenario.Height,
		r.Result.Density, r.Result.Velocity, Scientific(r.Result.Lift))
}

func (r Record) JSON(places int32) ([]byte, error) {
	return json.Marshal(struct {
		Pressure    json.RawMessage `json:"pressure"`
		Temperature json.RawMessage `json:"temperature"`
		Height      json.RawMessage `json:"height"`
		Density     json.RawMessage `json:"density"`
		Velocity    json.RawMessage `json:"velocity"`
		Lift        json.RawMessage `json:"lift"`
	}{
		Number(r.Scenario.Pressure, places),
		Number(r.Scenario.Temperature, places),
		Number(r.Scenario.Height, places),
		Number(r.Result.Density, places),
		Number(r.Result.Velocity, places),
		Number(r.Result.Lift, places),
	})
}

type statsJSON struct {
	Mean   json.RawMessage `json:"mean"`
	Median json.RawMessage `json:"median"`
	Min    json.RawMessage `json:"min"`
	Max    json.RawMessage `json:"max"`
	StdDev json.RawMessage `json:"stddev"`
	P05    json.RawMessage `json:"p05"`
	P95    json.RawMessage `json:"p95"`
}

func newStatsJSON(s uncertain.Stats, places int32) statsJSON {
	return statsJSON{
		Mean:   Number(s.Mean, places),
		Median: Number(s.Median, places),
		Min:    Number(s.Min, places),
		Max:    Number(s.Max, places),
		StdDev: Number(s.StdDev, places),
		P05:    Number(s.P05, places),
		P95:    Number(s.P95, places),
	}
}

func SummaryJSON(s uncertain.Summary, places int32) ([]byte, error) {
	return json.Marshal(struct {
		N        int       `json:"n"`
		Rejected int       `json:"rejected"`
		Density  statsJSON `json:"density"`
		Velocity statsJSON `json:"velocity"`
		Lift     statsJSON `json:"lift"`
	}{
		N:        s.N,
		Rejected: s.Rejected,
		Density:  newStatsJSON(s.Density, places),
		Velocity: newStatsJSON(s.Velocity, places),
		Lift:     newStatsJSON(s.Lift, places),
	})
}

// WriteSummary writes a Summary as a small text table.
func WriteSummary(w io.Writer, s uncertain.Summary) error {
	if _, err := fmt.Fprintf(w, "Draws = %s (%s rejected)\n",
		humanize.Comma(int64(s.N)), humanize.Comma(int64(s.Rejected))); err != nil {
		return err
	}
	rows := []struct {
		label string
		stats uncertain.Stats
	}{
		{"Density (kg/m^3)", s.Density},
		{"Velocity (m/s)", s.Velocity},
		{"Lift (N)", s.Lift},
	}
	for _, row := range rows {
		st := row.stats
		_, err := fmt.Fprintf(w, "%-17s mean=%v median=%v stddev=%v p05=%v p95=%v min=%v max=%v\n",
			row.label,
			common.DecimalToFixed(st.Mean, 4),
			common.DecimalToFixed(st.Median, 4),
			common.DecimalToFixed(st.StdDev, 4),
			common.DecimalToFixed(st.P05, 4),
			common.DecimalToFixed(st.P95, 4),
			common.DecimalToFixed(st.Min, 4),
			common.DecimalToFixed(st.Max, 4),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
