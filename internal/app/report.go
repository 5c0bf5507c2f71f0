package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vk/chime/internal/params"
)

const dateLayout = "2006-01-02"

// report writes a human-readable summary of the resolved configuration to
// the app's output writer.
func (a *App) report(p *params.Parameters) error {
	var b strings.Builder

	b.WriteString("Resolved parameters\n")
	writeLine(&b, "Population", formatOptionalInt(p.Population))
	if p.Region != nil {
		writeLine(&b, "Region sub-populations", fmt.Sprintf("%d", len(p.Region.Counts)))
	}
	writeLine(&b, "Current hospitalized", fmt.Sprintf("%d", p.CurrentHospitalized))
	writeLine(&b, "Market share", fmt.Sprintf("%.5f", p.MarketShare))
	writeLine(&b, "Relative contact rate", fmt.Sprintf("%.2f", p.RelativeContactRate))
	writeLine(&b, "Doubling time (days)", formatOptionalFloat(p.DoublingTime))
	writeLine(&b, "Infectious days", fmt.Sprintf("%d", p.InfectiousDays))
	writeLine(&b, p.Labels["recovered"], fmt.Sprintf("%d", p.Recovered))
	writeLine(&b, "Days to project", fmt.Sprintf("%d", p.NDays))
	writeLine(&b, "Current date", p.CurrentDate.Format(dateLayout))
	writeLine(&b, "Mitigation date", p.MitigationDate.Format(dateLayout))
	writeLine(&b, "First hospitalized", formatOptionalDate(p.DateFirstHospitalized))

	for _, name := range []string{"hospitalized", "icu", "ventilated"} {
		d := p.Dispositions[name]
		writeLine(&b, p.Labels[name], fmt.Sprintf("rate %.5f over %d days", d.Rate, d.Days))
	}

	_, err := io.WriteString(a.outW, b.String())
	return err
}

func writeLine(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-24s %s\n", label+":", value)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func formatOptionalDate(v *time.Time) string {
	if v == nil {
		return "-"
	}
	return v.Format(dateLayout)
}
