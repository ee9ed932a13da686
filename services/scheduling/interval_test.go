package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalOverlaps(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2030, time.June, 10, hour, min, 0, 0, time.UTC)
	}
	iv := func(sh, sm, eh, em int) Interval {
		return Interval{Start: at(sh, sm), End: at(eh, em)}
	}

	t.Run("back-to-back intervals do not overlap", func(t *testing.T) {
		earlier := iv(9, 0, 10, 0)
		later := iv(10, 0, 11, 0)
		assert.False(t, earlier.Overlaps(later))
		assert.False(t, later.Overlaps(earlier))
	})

	t.Run("identical intervals overlap", func(t *testing.T) {
		assert.True(t, iv(9, 0, 10, 0).Overlaps(iv(9, 0, 10, 0)))
	})

	t.Run("containing interval overlaps the contained one", func(t *testing.T) {
		appointment := iv(9, 0, 11, 0)
		slot := iv(9, 30, 10, 0)
		assert.True(t, appointment.Overlaps(slot))
	})

	t.Run("partial overlap at the front", func(t *testing.T) {
		assert.True(t, iv(9, 0, 10, 0).Overlaps(iv(9, 30, 10, 30)))
	})

	t.Run("partial overlap at the back", func(t *testing.T) {
		assert.True(t, iv(10, 0, 11, 0).Overlaps(iv(9, 30, 10, 30)))
	})

	t.Run("disjoint intervals do not overlap", func(t *testing.T) {
		assert.False(t, iv(9, 0, 10, 0).Overlaps(iv(11, 0, 12, 0)))
	})

	t.Run("shared start overlaps", func(t *testing.T) {
		assert.True(t, iv(9, 0, 9, 30).Overlaps(iv(9, 0, 10, 0)))
	})
}
