package schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapswim-service/internal/app/models"
)

func TestConvertManualSessions(t *testing.T) {
	t.Run("Each Range Becomes Its Own Session", func(t *testing.T) {
		manual := &models.ManualSchedule{
			LapSwimSessions: []models.ManualSession{
				{
					Days:  []string{"MONDAY", "TUESDAY", "WEDNESDAY"},
					Times: []string{"6:00-9:00", "17:30-19:30"},
					Notes: "reservations recommended",
				},
			},
		}

		sessions := ConvertManualSessions(manual)

		require.Len(t, sessions, 2)
		assert.Equal(t, []string{"MONDAY", "TUESDAY", "WEDNESDAY"}, sessions[0].Days)
		assert.Equal(t, "6:00 am", sessions[0].Start.Format12Hour())
		assert.Equal(t, "9:00 am", sessions[0].End.Format12Hour())
		assert.Equal(t, []string{"MONDAY", "TUESDAY", "WEDNESDAY"}, sessions[1].Days)
		assert.Equal(t, "5:30 pm", sessions[1].Start.Format12Hour())
		assert.Equal(t, "7:30 pm", sessions[1].End.Format12Hour())
		assert.Equal(t, "reservations recommended", sessions[0].Notes)
	})

	t.Run("Empty Times Keeps Notes Only Session", func(t *testing.T) {
		manual := &models.ManualSchedule{
			LapSwimSessions: []models.ManualSession{
				{
					Days:  []string{"SATURDAY", "SUNDAY"},
					Times: []string{},
					Notes: "open, see website for hours",
				},
			},
		}

		sessions := ConvertManualSessions(manual)

		require.Len(t, sessions, 1)
		assert.False(t, sessions[0].HasTimes())
		assert.Equal(t, "open, see website for hours", sessions[0].Notes)
	})

	t.Run("Midnight And Noon Hours", func(t *testing.T) {
		manual := &models.ManualSchedule{
			LapSwimSessions: []models.ManualSession{
				{Days: []string{"MONDAY"}, Times: []string{"0:00-12:00"}},
			},
		}

		sessions := ConvertManualSessions(manual)

		require.Len(t, sessions, 1)
		assert.Equal(t, "12:00 am", sessions[0].Start.Format12Hour())
		assert.Equal(t, "12:00 pm", sessions[0].End.Format12Hour())
	})

	t.Run("Invalid Range Format Skipped", func(t *testing.T) {
		manual := &models.ManualSchedule{
			LapSwimSessions: []models.ManualSession{
				{Days: []string{"MONDAY"}, Times: []string{"whenever", "25:00-26:00", "7:00-9:00"}},
			},
		}

		sessions := ConvertManualSessions(manual)

		require.Len(t, sessions, 1)
		assert.Equal(t, "7:00 am", sessions[0].Start.Format12Hour())
	})
}
