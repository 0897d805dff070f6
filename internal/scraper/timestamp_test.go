package scraper

import (
	"fmt"
	"testing"
	"time"
)

func TestParseTimestampCellFormats(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int64
	}{
		{
			name: "long month with time",
			cell: "<td>January 15, 2025 - 18:00</td>",
			want: time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name: "iso date with time",
			cell: "<td>2025-02-01 14:30</td>",
			want: time.Date(2025, 2, 1, 14, 30, 0, 0, time.UTC).Unix(),
		},
		{
			name: "abbreviated month with time",
			cell: "<td>Feb 1, 2025 - 14:30</td>",
			want: time.Date(2025, 2, 1, 14, 30, 0, 0, time.UTC).Unix(),
		},
		{
			name: "bare iso date",
			cell: "<td>2025-01-10</td>",
			want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name: "long month without time",
			cell: "<td>February 1, 2025</td>",
			want: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name: "trailing timezone abbreviation stripped",
			cell: "<td>January 15, 2025 - 18:00 CET</td>",
			want: time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name: "trailing GMT stripped",
			cell: "<td>2025-02-01 14:30 GMT</td>",
			want: time.Date(2025, 2, 1, 14, 30, 0, 0, time.UTC).Unix(),
		},
		{
			name: "timer attribute preferred over text",
			cell: `<td><span class="timer-object" data-timestamp="1738360800">February 9, 2099 - 10:00</span></td>`,
			want: 1738360800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, fmt.Sprintf("<table><tr>%s</tr></table>", tt.cell))
			cells := doc.Find("td, th")
			got, ok := parseTimestampCell(cells, 0)
			if !ok {
				t.Fatalf("parseTimestampCell(%q) failed, want %d", tt.cell, tt.want)
			}
			if got != tt.want {
				t.Errorf("parseTimestampCell(%q) = %d, want %d", tt.cell, got, tt.want)
			}
		})
	}
}

func TestParseTimestampCellFailures(t *testing.T) {
	tests := []struct {
		name string
		cell string
	}{
		{"free text", "<td>TBD</td>"},
		{"empty cell", "<td></td>"},
		{"timer without attribute", `<td><span class="timer-object">soon</span></td>`},
		{"timer with junk attribute", `<td><span class="timer-object" data-timestamp="soon">soon</span></td>`},
		{"unsupported format", "<td>15/01/2025</td>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseHTML(t, fmt.Sprintf("<table><tr>%s</tr></table>", tt.cell))
			cells := doc.Find("td, th")
			if ts, ok := parseTimestampCell(cells, 0); ok {
				t.Errorf("parseTimestampCell(%q) = %d, want failure", tt.cell, ts)
			}
		})
	}
}

func TestParseTimestampCellIndexOutOfRange(t *testing.T) {
	doc := parseHTML(t, "<table><tr><td>2025-01-10</td></tr></table>")
	cells := doc.Find("td, th")

	if _, ok := parseTimestampCell(cells, -1); ok {
		t.Error("negative column index must fail")
	}
	if _, ok := parseTimestampCell(cells, 5); ok {
		t.Error("out-of-range column index must fail")
	}
}
