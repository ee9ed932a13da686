package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbook/config"
)

func TestNewPolicy(t *testing.T) {
	t.Run("unknown timezone is rejected", func(t *testing.T) {
		_, err := NewPolicy(config.Config{
			Timezone:            "Mars/Olympus_Mons",
			SlotDurationMinutes: 30,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid timezone")
	})

	t.Run("malformed blocked date is rejected", func(t *testing.T) {
		_, err := NewPolicy(config.Config{
			Timezone:            "UTC",
			SlotDurationMinutes: 30,
			BlockedDates:        []string{"25-12-2030"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid blocked date")
	})

	t.Run("non-positive slot duration is rejected", func(t *testing.T) {
		_, err := NewPolicy(config.Config{Timezone: "UTC"})
		require.Error(t, err)
	})
}

func TestPolicyTimeHelpers(t *testing.T) {
	p := testPolicy(t)

	t.Run("day start respects the business timezone", func(t *testing.T) {
		// 18:30 UTC on June 10 is already June 11 in Singapore (UTC+8).
		instant := time.Date(2030, time.June, 10, 18, 30, 0, 0, time.UTC)
		dayStart := p.DayStart(instant)

		assert.Equal(t, 2030, dayStart.Year())
		assert.Equal(t, time.June, dayStart.Month())
		assert.Equal(t, 11, dayStart.Day())
		assert.Equal(t, 0, dayStart.Hour())
		assert.Equal(t, p.Location, dayStart.Location())
	})

	t.Run("hour boundary lands on the same local day", func(t *testing.T) {
		dayStart := p.DayStart(local(p, 2030, time.June, 10, 12, 0))
		nine := p.HourOnDay(dayStart, 9)

		assert.Equal(t, local(p, 2030, time.June, 10, 9, 0), nine)
	})

	t.Run("operation window spans the configured hours", func(t *testing.T) {
		dayStart := p.DayStart(local(p, 2030, time.June, 10, 0, 0))
		opStart, opEnd := p.OperationWindow(dayStart)

		assert.Equal(t, local(p, 2030, time.June, 10, 9, 0), opStart)
		assert.Equal(t, local(p, 2030, time.June, 10, 17, 0), opEnd)
	})

	t.Run("blocked date matches by local calendar day", func(t *testing.T) {
		assert.True(t, p.IsBlockedDate(local(p, 2030, time.December, 25, 15, 0)))
		// 23:00 UTC Dec 24 is already Dec 25 in Singapore.
		assert.True(t, p.IsBlockedDate(time.Date(2030, time.December, 24, 23, 0, 0, 0, time.UTC)))
		assert.False(t, p.IsBlockedDate(local(p, 2030, time.December, 26, 9, 0)))
	})

	t.Run("blocked windows materialize on the requested day", func(t *testing.T) {
		dayStart := p.DayStart(local(p, 2030, time.June, 10, 0, 0))
		windows := p.BlockedWindows(dayStart)

		require.Len(t, windows, 1)
		assert.Equal(t, local(p, 2030, time.June, 10, 12, 0), windows[0].Start)
		assert.Equal(t, local(p, 2030, time.June, 10, 13, 0), windows[0].End)
	})
}
