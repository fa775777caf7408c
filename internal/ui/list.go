package ui

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/glowdesk/glowdesk/internal/appointment"
	"github.com/glowdesk/glowdesk/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		status    string
		staff     string
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments in a date range",
		Long: `List appointments in a date range.

If no dates are specified, lists today's appointments.
If only --start is specified, lists that single day.
If both --start and --end are specified, lists the range (inclusive).`,
		Example: `  glowdesk list
  glowdesk list --start=2025-01-15
  glowdesk list --start=2025-01-13 --end=2025-01-19 --status=confirmed
  glowdesk list --staff=Maya`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			var filter appointment.Status
			if status != "" {
				filter = appointment.Status(status)
				if !filter.Valid() {
					return fmt.Errorf("unknown status %q", status)
				}
			}

			appts, err := a.dir.ListAppointments(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing appointments: %w", err)
			}

			appts = filterAppointments(appts, filter, staff)
			if len(appts) == 0 {
				fmt.Println("No appointments found in the specified date range.")
				return nil
			}

			sort.SliceStable(appts, func(i, j int) bool {
				if !dateutil.SameDay(appts[i].Date, appts[j].Date) {
					return appts[i].Date.Before(appts[j].Date)
				}
				mi, _ := appts[i].StartMinutes()
				mj, _ := appts[j].StartMinutes()
				return mi < mj
			})

			printAppointments(appts)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().StringVar(&status, "status", "", "Only show this status (pending, confirmed, ...)")
	cmd.Flags().StringVar(&staff, "staff", "", "Only show this staff member's bookings")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

func filterAppointments(appts []*appointment.Appointment, status appointment.Status, staff string) []*appointment.Appointment {
	out := appts[:0]
	for _, a := range appts {
		if status != "" && a.Status != status {
			continue
		}
		if staff != "" && a.StaffName != staff {
			continue
		}
		out = append(out, a)
	}
	return out
}

func printAppointments(appts []*appointment.Appointment) {
	// Keep the services column from wrapping on narrow terminals.
	maxServices := termWidth() - 60
	if maxServices < 12 {
		maxServices = 12
	}

	var currentDate string
	for _, a := range appts {
		date := dateutil.FormatDate(a.Date)
		if date != currentDate {
			if currentDate != "" {
				fmt.Println()
			}
			fmt.Printf("=== %s ===\n", formatHeader(date))
			currentDate = date
		}

		glyph := formatStatus(a.Status, statusGlyph(a.Status))
		fmt.Printf("  %s %-8s %-20s %-12s %s  %s\n",
			glyph,
			a.StartTime,
			a.ClientName,
			a.StaffName,
			formatMuted(clipText(a.Services, maxServices)),
			formatMoney(appointment.FormatPrice(a.Price)),
		)
	}
}

func clipText(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}
