package schedules

import (
	"fmt"
	"regexp"
	"strings"

	"lapswim-service/internal/app/models"
)

// timeLookaheadLines bounds how far below an activity row the matching time
// row may sit. Schedule tables sometimes interpose a descriptive line (a
// pool-depth note, for example) between the activity and its times.
const timeLookaheadLines = 3

var dayNamePattern = regexp.MustCompile(`(?i)(MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY)`)

// timeRangePattern matches "H:MM am <dash> H:MM pm" with any of the dash
// glyphs that show up in converted PDFs: hyphen, figure dash, en dash,
// em dash.
var timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:am|pm))\s*[‐–—-]\s*(\d{1,2}:\d{2}\s*(?:am|pm))`)

// Extractor locates sessions for one activity inside the tab-delimited text
// of a converted schedule PDF. Tables put day names in a header row and
// column-align activity rows with their time rows purely through tab
// positions, so tabs are preserved everywhere and lines are never trimmed.
type Extractor struct {
	activityPattern *regexp.Regexp
}

func NewExtractor(activityLabel string) *Extractor {
	words := strings.Fields(activityLabel)
	escaped := make([]string, 0, len(words))
	for _, word := range words {
		escaped = append(escaped, regexp.QuoteMeta(word))
	}
	pattern := regexp.MustCompile(`(?i)` + strings.Join(escaped, `\s*`))
	return &Extractor{activityPattern: pattern}
}

// Extract returns the normalized sessions found in rawText. A missing or
// unrecognizable header is not an error: it yields an empty session list,
// the expected outcome for documents with no extractable schedule.
func (e *Extractor) Extract(rawText string) []models.Session {
	sessions := make([]models.Session, 0)

	lines := splitNonEmptyLines(rawText)

	headerIndex, days := findDayHeader(lines)
	if headerIndex == -1 || len(days) == 0 {
		return sessions
	}

	for i := headerIndex + 1; i < len(lines); i++ {
		if !e.activityPattern.MatchString(lines[i]) {
			continue
		}

		timeLine := ""
		for j := 1; j <= timeLookaheadLines; j++ {
			if i+j >= len(lines) {
				break
			}
			if timeRangePattern.MatchString(lines[i+j]) {
				timeLine = lines[i+j]
				break
			}
		}
		if timeLine == "" {
			continue
		}

		activityColumns := strings.Split(lines[i], "\t")
		timeColumns := strings.Split(timeLine, "\t")

		for col := 0; col < len(activityColumns) && col < len(days); col++ {
			activity := activityColumns[col]
			if !e.activityPattern.MatchString(activity) {
				continue
			}

			timeInfo := ""
			if col < len(timeColumns) {
				timeInfo = timeColumns[col]
			}

			// Only the time range in this column's own cell counts; matching
			// against the whole line would leak a neighboring day's times.
			match := timeRangePattern.FindStringSubmatch(timeInfo)
			if match == nil {
				continue
			}

			start, err := ParseClockTime(match[1])
			if err != nil {
				continue
			}
			end, err := ParseClockTime(match[2])
			if err != nil {
				continue
			}

			sessions = append(sessions, models.Session{
				Days:    []string{days[col]},
				Start:   &start,
				End:     &end,
				Context: strings.TrimSpace(activity) + " - " + strings.TrimSpace(timeInfo),
			})
		}
	}

	return dedupeSessions(sessions)
}

func splitNonEmptyLines(rawText string) []string {
	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// findDayHeader scans for the first line naming at least two days and
// returns its index together with the ordered day list. The list is
// compacted: non-day cells (a leading activity-label column, typically) are
// skipped, which keeps the days positionally aligned with the activity and
// time columns of the rows below.
func findDayHeader(lines []string) (int, []string) {
	for i, line := range lines {
		if len(dayNamePattern.FindAllString(line, -1)) < 2 {
			continue
		}

		var days []string
		for _, cell := range strings.Split(line, "\t") {
			if day := dayNamePattern.FindString(cell); day != "" {
				days = append(days, strings.ToUpper(day))
			}
		}
		if len(days) > 0 {
			return i, days
		}
	}
	return -1, nil
}

// dedupeSessions drops sessions sharing a (day, start, end) triple, keeping
// the first occurrence.
func dedupeSessions(sessions []models.Session) []models.Session {
	seen := make(map[string]bool, len(sessions))
	deduped := make([]models.Session, 0, len(sessions))
	for _, session := range sessions {
		key := fmt.Sprintf("%s|%s|%s", strings.Join(session.Days, ","), session.Start.Format12Hour(), session.End.Format12Hour())
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, session)
	}
	return deduped
}
