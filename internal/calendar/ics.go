// Package calendar generates iCalendar (.ics) documents for a team's
// matches.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

// matchDuration is the blocked-out length of a match event.
const matchDuration = 2 * time.Hour

// alarmLead is how far before an upcoming match the reminder fires.
const alarmLead = 30 * time.Minute

// GenerateICS builds a VCALENDAR for a team with one VEVENT per match.
// An empty match list yields a valid calendar with zero events.
func GenerateICS(t team.Config, matches []match.Match) []byte {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:-//%s Match Calendar//liquipedia.net//\r\n", escapeICS(t.Name)))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s Matches\r\n", escapeICS(t.Name)))
	// Refresh interval hint for calendar clients (4 hours)
	ics.WriteString("X-PUBLISHED-TTL:PT4H\r\n")

	now := time.Now().UTC()
	for _, m := range matches {
		writeEvent(&ics, t, m, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return []byte(ics.String())
}

func writeEvent(ics *strings.Builder, t team.Config, m match.Match, stamp time.Time) {
	start := time.Unix(m.Timestamp, 0).UTC()
	end := start.Add(matchDuration)

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@liquipedia.net\r\n", m.ID()))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))

	summary := fmt.Sprintf("%s %s vs %s", t.Emoji, t.ShortName, m.Opponent)
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary)))

	description := fmt.Sprintf("Tournament: %s", m.Tournament)
	if m.URL != "" {
		description += fmt.Sprintf("\n\nMore info: %s", m.URL)
	}
	if !m.IsUpcoming {
		description += "\n\n(Completed match — no spoilers)"
	}
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))

	if m.URL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", m.URL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	if m.IsUpcoming {
		writeAlarm(ics, t, m)
	} else {
		// Don't block time for past matches
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
	}

	ics.WriteString("END:VEVENT\r\n")
}

func writeAlarm(ics *strings.Builder, t team.Config, m match.Match) {
	ics.WriteString("BEGIN:VALARM\r\n")
	ics.WriteString("ACTION:DISPLAY\r\n")
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n",
		escapeICS(fmt.Sprintf("%s vs %s starts in %d minutes!", t.Name, m.Opponent, int(alarmLead.Minutes())))))
	ics.WriteString(fmt.Sprintf("TRIGGER:-PT%dM\r\n", int(alarmLead.Minutes())))
	ics.WriteString("END:VALARM\r\n")
}

// Validate reports whether data looks like a well-formed calendar.
func Validate(data []byte) bool {
	text := string(data)
	return strings.HasPrefix(text, "BEGIN:VCALENDAR") && strings.Contains(text, "END:VCALENDAR")
}

// formatICSTime formats a time as an iCalendar UTC datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
