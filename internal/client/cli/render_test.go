package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/models"
	"github.com/dmitrijs2005/spycats/internal/client/roster"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := map[float64]string{
		0:          "$0.00",
		5:          "$5.00",
		1200.5:     "$1,200.50",
		999.999:    "$1,000.00",
		1234567.89: "$1,234,567.89",
		-42.1:      "-$42.10",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatUSD(in), "%v", in)
	}
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "0 years", formatYears(0))
	assert.Equal(t, "1 year", formatYears(1))
	assert.Equal(t, "12 years", formatYears(12))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))

	ts := time.Date(2025, time.March, 4, 15, 6, 0, 0, time.Local)
	assert.Equal(t, "March 4, 2025 at 3:06 PM", formatDate(ts))
}

func TestRenderRoster_States(t *testing.T) {
	var out bytes.Buffer

	renderRoster(&out, roster.Snapshot{Error: "db down"})
	assert.Equal(t, "Error: db down\ntype 'retry' to try again\n", out.String())

	out.Reset()
	renderRoster(&out, roster.Snapshot{Cats: []models.Cat{}})
	assert.Equal(t, "No Spy Cats Found\n", out.String())

	out.Reset()
	renderRoster(&out, roster.Snapshot{Loading: true})
	assert.Contains(t, out.String(), "Loading")

	out.Reset()
	renderRoster(&out, roster.Snapshot{Cats: []models.Cat{
		{ID: 7, Name: "Tom", Breed: "Persian", YearsOfExperience: 1, Salary: 1500},
	}})
	s := out.String()
	assert.Contains(t, s, "NAME")
	assert.Contains(t, s, "Tom")
	assert.Contains(t, s, "1 year")
	assert.Contains(t, s, "$1,500.00")
}

func TestRenderCat(t *testing.T) {
	var out bytes.Buffer
	renderCat(&out, models.Cat{ID: 7, Name: "Tom", Breed: "Persian", YearsOfExperience: 4, Salary: 99.5})

	s := out.String()
	assert.Contains(t, s, "Tom")
	assert.Contains(t, s, "Persian")
	assert.Contains(t, s, "4 years")
	assert.Contains(t, s, "$99.50")
}

func TestRenderHistoryAndStats(t *testing.T) {
	var out bytes.Buffer
	renderHistory(&out, nil)
	assert.Contains(t, out.String(), "No API calls recorded")

	out.Reset()
	renderHistory(&out, []models.CallRecord{
		{Method: "GET", Path: "/api/v1/cats/", Status: 0, Error: "Network error", CreatedAt: time.Now()},
	})
	assert.Contains(t, out.String(), "Network error")
	assert.Contains(t, out.String(), "/api/v1/cats/")

	out.Reset()
	renderStats(&out, nil)
	assert.Contains(t, out.String(), "No API calls made yet")

	out.Reset()
	renderStats(&out, []client.OpStats{{Op: "list", Calls: 3, Failures: 1, AvgMs: 12.34}})
	assert.Contains(t, out.String(), "12.3ms")
}
