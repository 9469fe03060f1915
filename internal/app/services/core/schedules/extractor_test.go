package schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapswim-service/internal/app/models"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor("lap swim")

	t.Run("Two Day Columns", func(t *testing.T) {
		rawText := "Balboa Pool Schedule\n" +
			"\tMONDAY\tTUESDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"7:00 am - 9:00 am\t6:00 am - 8:00 am\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 2)
		assert.Equal(t, []string{"MONDAY"}, sessions[0].Days)
		assert.Equal(t, "7:00 am", sessions[0].Start.Format12Hour())
		assert.Equal(t, "9:00 am", sessions[0].End.Format12Hour())
		assert.Equal(t, []string{"TUESDAY"}, sessions[1].Days)
		assert.Equal(t, "6:00 am", sessions[1].Start.Format12Hour())
		assert.Equal(t, "8:00 am", sessions[1].End.Format12Hour())
	})

	t.Run("Time Row Separated By Note Line", func(t *testing.T) {
		rawText := "\tWEDNESDAY\tFRIDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"(shallow end only)\t(shallow end only)\n" +
			"12:00 pm - 2:00 pm\t12:00 pm - 2:00 pm\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 2)
		assert.Equal(t, []string{"WEDNESDAY"}, sessions[0].Days)
		assert.Equal(t, "12:00 pm", sessions[0].Start.Format12Hour())
		assert.Equal(t, []string{"FRIDAY"}, sessions[1].Days)
	})

	t.Run("No Time Row Within Lookahead", func(t *testing.T) {
		rawText := "\tMONDAY\tTUESDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"note one\n" +
			"note two\n" +
			"note three\n" +
			"7:00 am - 9:00 am\t7:00 am - 9:00 am\n"

		sessions := extractor.Extract(rawText)

		assert.Empty(t, sessions)
	})

	t.Run("Time Must Be In Same Column", func(t *testing.T) {
		rawText := "\tMONDAY\tTUESDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"7:00 am - 9:00 am\twater aerobics\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 1)
		assert.Equal(t, []string{"MONDAY"}, sessions[0].Days)
	})

	t.Run("Duplicate Rows Deduplicated", func(t *testing.T) {
		rawText := "\tSATURDAY\tSUNDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"9:00 am - 11:00 am\t9:00 am - 11:00 am\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"9:00 am - 11:00 am\t9:00 am - 11:00 am\n"

		sessions := extractor.Extract(rawText)

		assert.Len(t, sessions, 2)
	})

	t.Run("Activity Label Whitespace And Case Insensitive", func(t *testing.T) {
		rawText := "\tMONDAY\tTUESDAY\n" +
			"Lap  Swim\tLAPSWIM\n" +
			"6:30 am - 8:30 am\t6:30 am - 8:30 am\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 2)
	})

	t.Run("Dash Glyph Variants", func(t *testing.T) {
		rawText := "\tMONDAY\tTUESDAY\tTHURSDAY\n" +
			"LAP SWIM\tLAP SWIM\tLAP SWIM\n" +
			"7:00 am – 9:00 am\t7:00 am — 9:00 am\t7:00 am ‐ 9:00 am\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 3)
		for _, session := range sessions {
			assert.Equal(t, "7:00 am", session.Start.Format12Hour())
			assert.Equal(t, "9:00 am", session.End.Format12Hour())
		}
	})

	t.Run("Header With Leading Label Cell", func(t *testing.T) {
		rawText := "Activity\tMONDAY\tTUESDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"8:00 am - 10:00 am\t8:00 am - 10:00 am\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 2)
		assert.Equal(t, []string{"MONDAY"}, sessions[0].Days)
		assert.Equal(t, []string{"TUESDAY"}, sessions[1].Days)
	})

	t.Run("No Day Header Yields Empty", func(t *testing.T) {
		rawText := "Pool closed for renovation\nLAP SWIM\n7:00 am - 9:00 am\n"

		sessions := extractor.Extract(rawText)

		assert.NotNil(t, sessions)
		assert.Empty(t, sessions)
	})

	t.Run("Single Day Line Is Not A Header", func(t *testing.T) {
		rawText := "Closed MONDAY for maintenance\n" +
			"LAP SWIM\n" +
			"7:00 am - 9:00 am\n"

		sessions := extractor.Extract(rawText)

		assert.Empty(t, sessions)
	})

	t.Run("Activity Rows Before Header Ignored", func(t *testing.T) {
		rawText := "LAP SWIM\n" +
			"7:00 am - 9:00 am\n" +
			"\tMONDAY\tTUESDAY\n" +
			"LAP SWIM\tLAP SWIM\n" +
			"6:00 am - 8:00 am\t6:00 am - 8:00 am\n"

		sessions := extractor.Extract(rawText)

		require.Len(t, sessions, 2)
		assert.Equal(t, "6:00 am", sessions[0].Start.Format12Hour())
	})
}

func TestParseClockTime(t *testing.T) {
	t.Run("Morning", func(t *testing.T) {
		parsed, err := ParseClockTime("7:00 am")
		require.NoError(t, err)
		assert.Equal(t, models.ClockTime{Hour: 7, Minute: 0}, parsed)
	})

	t.Run("Afternoon", func(t *testing.T) {
		parsed, err := ParseClockTime("1:30 pm")
		require.NoError(t, err)
		assert.Equal(t, models.ClockTime{Hour: 13, Minute: 30}, parsed)
	})

	t.Run("Midnight", func(t *testing.T) {
		parsed, err := ParseClockTime("12:00 am")
		require.NoError(t, err)
		assert.Equal(t, models.ClockTime{Hour: 0, Minute: 0}, parsed)
	})

	t.Run("Noon", func(t *testing.T) {
		parsed, err := ParseClockTime("12:00 pm")
		require.NoError(t, err)
		assert.Equal(t, models.ClockTime{Hour: 12, Minute: 0}, parsed)
	})

	t.Run("Uppercase Period", func(t *testing.T) {
		parsed, err := ParseClockTime("9:15 PM")
		require.NoError(t, err)
		assert.Equal(t, models.ClockTime{Hour: 21, Minute: 15}, parsed)
	})

	t.Run("Hour Out Of Range", func(t *testing.T) {
		_, err := ParseClockTime("13:00 pm")
		assert.Error(t, err)
	})

	t.Run("Missing Period", func(t *testing.T) {
		_, err := ParseClockTime("7:00")
		assert.Error(t, err)
	})

	t.Run("Format Round Trip", func(t *testing.T) {
		for _, value := range []string{"7:00 am", "12:00 am", "12:00 pm", "11:59 pm", "1:05 pm"} {
			parsed, err := ParseClockTime(value)
			require.NoError(t, err)
			assert.Equal(t, value, parsed.Format12Hour())
		}
	})
}
