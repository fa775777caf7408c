package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
	"github.com/glowdesk/glowdesk/internal/revenue"
)

func (a *App) revenueCmd() *cobra.Command {
	var (
		week    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Show booked revenue for a week",
		Long: `Display the booked revenue of a Monday-to-Sunday week.

Only confirmed, in-progress, and completed bookings count; pending and
cancelled ones are excluded. Defaults to the current week.`,
		Example: `  glowdesk revenue
  glowdesk revenue --week=2025-01-13`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			anchor := time.Now()
			if week != "" {
				var err error
				anchor, err = dateutil.ParseDate(week)
				if err != nil {
					return err
				}
			}

			from, to := dateutil.WeekRange(anchor)
			appts, err := a.dir.ListAppointments(context.Background(), from, to)
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}

			report := revenue.Summarize(from, appts)
			printRevenueReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any date inside the week (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

func printRevenueReport(r *revenue.WeekReport) {
	header := fmt.Sprintf("REVENUE: %s - %s", dateutil.FormatDate(r.Start), dateutil.FormatDate(r.End))
	fmt.Printf("\n  %s\n", formatHeader(header))
	fmt.Println(strings.Repeat("─", 50))

	if r.Count == 0 {
		fmt.Println("  No booked revenue this week.")
		fmt.Println()
		return
	}

	best, _ := r.BestDay()
	for i, ds := range r.DayStats {
		if ds.Count == 0 {
			continue
		}
		name := dateutil.WeekdayShortName(i)
		line := fmt.Sprintf("  %-4s %9s  (%d bookings)  %s",
			name,
			appointment.FormatPrice(ds.Total),
			ds.Count,
			revenueBar(ds.Total, r.Total, 20),
		)
		if i == best {
			fmt.Println(formatHeader(line))
		} else {
			fmt.Println(line)
		}
	}

	fmt.Println(strings.Repeat("─", 50))
	for _, st := range r.ByStaff {
		fmt.Printf("  %-14s %9s  (%d bookings)\n",
			st.Name, formatMoney(appointment.FormatPrice(st.Total)), st.Count)
	}

	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("  Total %s across %d bookings (avg %s)\n",
		formatMoney(appointment.FormatPrice(r.Total)),
		r.Count,
		formatMuted(appointment.FormatPrice(r.Average())),
	)
	fmt.Println()
}

// revenueBar renders a proportional bar of day revenue against the week.
func revenueBar(part, total float64, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := int(part / total * float64(width))
	if filled > width {
		filled = width
	}
	return formatMoney(strings.Repeat("█", filled)) + formatMuted(strings.Repeat("░", width-filled))
}
