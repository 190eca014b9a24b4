package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/taskburn/pkg/application"
	"github.com/felixgeelhaar/taskburn/pkg/domain/burndown"
	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
var statusAhead = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var statusOnTrack = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
var statusBehind = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
var holidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func formatStamp(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

func styleStatus(s burndown.Status) string {
	label := strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
	switch s {
	case burndown.StatusAhead:
		return statusAhead.Render(label)
	case burndown.StatusOnTrack:
		return statusOnTrack.Render(label)
	case burndown.StatusBehind:
		return statusBehind.Render(label)
	default:
		return label
	}
}

func renderReport(w io.Writer, r *application.Report) {
	title := r.TaskID
	if r.Title != "" {
		title = fmt.Sprintf("%s (%s)", r.Title, r.TaskID)
	}
	fmt.Fprintln(w, titleStyle.Render("Burn-down: "+title))

	res := r.Result
	start, end := res.Window()
	fmt.Fprintf(w, "%s %s → %s\n", labelStyle.Render("Window:         "), formatStamp(start), formatStamp(end))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Log entries:    "), r.Entries)
	fmt.Fprintf(w, "%s %.1f%%\n", labelStyle.Render("Progress:       "), res.Progress())
	fmt.Fprintf(w, "%s %.1f pts/day\n", labelStyle.Render("Ideal velocity: "), res.IdealVelocity)
	fmt.Fprintf(w, "%s %.1f pts/day\n", labelStyle.Render("Actual velocity:"), res.ActualVelocity)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ideal")
	for _, p := range res.Ideal {
		fmt.Fprintf(w, "  %-16s %5.1f\n", formatStamp(p.Timestamp), p.Remaining)
	}
	fmt.Fprintln(w, "Actual")
	if len(res.Actual) == 0 {
		fmt.Fprintln(w, "  (no progress recorded)")
	}
	for _, p := range res.Actual {
		fmt.Fprintf(w, "  %-16s %5.1f\n", formatStamp(p.Timestamp), p.Remaining)
	}

	a := r.Assessment
	fmt.Fprintln(w)
	if a.Status == burndown.StatusUnknown {
		fmt.Fprintf(w, "Status: %s\n", styleStatus(a.Status))
		return
	}
	fmt.Fprintf(w, "Status: %s (%.1f remaining, %.1f expected, %.1f working days left)\n",
		styleStatus(a.Status), a.Actual, a.Expected, a.WorkingDaysTo)
}

func renderDay(w io.Writer, info calendar.DayInfo) {
	kind := "business day"
	switch {
	case info.Holiday != nil:
		kind = holidayStyle.Render(fmt.Sprintf("holiday: %s (%s)", info.Holiday.Name, info.Holiday.Scope))
	case info.Weekend:
		kind = "weekend"
	}
	fmt.Fprintf(w, "%s %s: %s\n", info.Date.Format("2006-01-02"), info.Date.Weekday(), kind)
}

func renderHolidays(w io.Writer, year int, holidays []calendar.Holiday) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Holidays %d", year)))
	for _, h := range holidays {
		where := ""
		if h.City != "" {
			where = " " + h.City + "/" + h.Region
		} else if h.Region != "" {
			where = " " + h.Region
		}
		fmt.Fprintf(w, "%s  %-3s  %-9s %s%s\n",
			h.Date.Format("2006-01-02"), h.Date.Weekday().String()[:3], h.Scope, h.Name, labelStyle.Render(where))
	}
	fmt.Fprintf(w, "%d holidays\n", len(holidays))
}
