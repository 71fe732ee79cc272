// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"math"
)

// Midpoint splits values into "high" and "low" for Balance.
const Midpoint = 0.5

// Balance is the share of values above Midpoint, in percent, minus 50.
// An all-high sequence gives 50, an all-low one -50, an empty one 0.
func Balance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	above := 0
	for _, v := range values {
		if v > Midpoint {
			above++
		}
	}

	return float64(above)/float64(len(values))*100 - 50
}

// Severity grades how lopsided a balance is.
type Severity int

const (
	Balanced Severity = iota
	Notice
	Warning
	Critical
)

func (s Severity) String() string {
	switch s {
	case Balanced:
		return "balanced"
	case Notice:
		return "notice"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// BalanceReport is a human-facing reading of a balance value.
type BalanceReport struct {
	Balance  float64
	Percent  float64 // |Balance|
	Above    bool    // more values above Midpoint than below
	Severity Severity
}

// Direction is "above" or "below".
func (r BalanceReport) Direction() string {
	if r.Above {
		return "above"
	}

	return "below"
}

func (r BalanceReport) String() string {
	if r.Percent == 0 {
		return "0.0% balanced"
	}

	return fmt.Sprintf("%.1f%% %s (%s)", r.Percent, r.Direction(), r.Severity)
}

// DescribeBalance grades b: over 45 points off centre is critical, over 30
// a warning, over 15 a notice.
func DescribeBalance(b float64) BalanceReport {
	pct := math.Abs(b)

	sev := Balanced
	switch {
	case pct > 45:
		sev = Critical
	case pct > 30:
		sev = Warning
	case pct > 15:
		sev = Notice
	}

	return BalanceReport{
		Balance:  b,
		Percent:  pct,
		Above:    b > 0,
		Severity: sev,
	}
}
