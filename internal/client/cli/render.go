package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/client/roster"
	"github.com/dustin/go-humanize"
)

const (
	msgNoCats    = "No Spy Cats Found"
	msgRetryHint = "type 'retry' to try again"
	longDate     = "January 2, 2006 at 3:04 PM"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatUSD renders v as US dollars with thousands separators: 1234.5 -> $1,234.50.
func formatUSD(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}

func formatYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(longDate)
}

// renderRoster prints one of the list states: error, empty or the table.
func renderRoster(w io.Writer, s roster.Snapshot) {
	switch {
	case s.Loading:
		fmt.Fprintln(w, "Loading spy cats...")
	case s.Error != "":
		fmt.Fprintln(w, "Error:", s.Error)
		fmt.Fprintln(w, msgRetryHint)
	case len(s.Cats) == 0:
		fmt.Fprintln(w, msgNoCats)
	default:
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tNAME\tBREED\tEXPERIENCE\tSALARY")
		for _, c := range s.Cats {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Breed, formatYears(c.YearsOfExperience), formatUSD(c.Salary))
		}
		_ = tw.Flush()
	}
}

func renderCat(w io.Writer, c models.Cat) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", c.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", c.Name)
	fmt.Fprintf(tw, "Breed:\t%s\n", c.Breed)
	fmt.Fprintf(tw, "Experience:\t%s\n", formatYears(c.YearsOfExperience))
	fmt.Fprintf(tw, "Salary:\t%s\n", formatUSD(c.Salary))
	fmt.Fprintf(tw, "Created:\t%s\n", formatDate(c.CreatedAt))
	fmt.Fprintf(tw, "Updated:\t%s\n", formatDate(c.UpdatedAt))
	_ = tw.Flush()
}

func renderHistory(w io.Writer, recs []models.CallRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No API calls recorded")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "TIME\tMETHOD\tPATH\tSTATUS\tDURATION\tERROR")
	for _, r := range recs {
		status := strconv.Itoa(r.Status)
		if r.Status == 0 {
			status = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.CreatedAt.Local().Format(time.DateTime), r.Method, r.Path, status, r.Duration, r.Error)
	}
	_ = tw.Flush()
}

func renderStats(w io.Writer, stats []client.OpStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No API calls made yet")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "OP\tCALLS\tFAILURES\tAVG\tLAST")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1fms\t%s\n", s.Op, s.Calls, s.Failures, s.AvgMs, s.Last)
	}
	_ = tw.Flush()
}
