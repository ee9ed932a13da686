package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbook/models"
)

func TestPlanDay(t *testing.T) {
	ctx := context.Background()
	p := testPolicy(t)
	day := local(p, 2030, time.June, 10, 0, 0)

	t.Run("empty store yields a fully available grid", func(t *testing.T) {
		planner := &AvailabilityPlanner{Repo: newMemRepo(), Policy: p}

		slots, err := planner.PlanDay(ctx, day)
		require.NoError(t, err)

		// 9:00 through 17:00 inclusive at half-hour width.
		require.Len(t, slots, 17)
		for _, s := range slots {
			assert.Equal(t, 1, s.Available)
			assert.Nil(t, s.AppointmentID)
			assert.Equal(t, day.UTC(), s.Date)
		}
		assert.Equal(t, local(p, 2030, time.June, 10, 9, 0).UTC(), slots[0].Time)
		assert.Equal(t, local(p, 2030, time.June, 10, 17, 0).UTC(), slots[len(slots)-1].Time)
	})

	t.Run("an appointment occupies every slot it covers", func(t *testing.T) {
		repo := newMemRepo()
		saved, err := repo.Insert(ctx, &models.Appointment{
			StartAt: local(p, 2030, time.June, 10, 9, 0).UTC(),
			EndAt:   local(p, 2030, time.June, 10, 10, 0).UTC(),
		})
		require.NoError(t, err)

		planner := &AvailabilityPlanner{Repo: repo, Policy: p}
		slots, err := planner.PlanDay(ctx, day)
		require.NoError(t, err)
		require.Len(t, slots, 17)

		for i, s := range slots {
			switch i {
			case 0, 1: // 9:00 and 9:30
				assert.Equal(t, 0, s.Available, "slot %d should be occupied", i)
				require.NotNil(t, s.AppointmentID)
				assert.Equal(t, saved.ID, *s.AppointmentID)
			default:
				assert.Equal(t, 1, s.Available, "slot %d should be free", i)
				assert.Nil(t, s.AppointmentID)
			}
		}
	})

	t.Run("slot ending exactly at an appointment start stays free", func(t *testing.T) {
		repo := newMemRepo()
		_, err := repo.Insert(ctx, &models.Appointment{
			StartAt: local(p, 2030, time.June, 10, 10, 0).UTC(),
			EndAt:   local(p, 2030, time.June, 10, 11, 0).UTC(),
		})
		require.NoError(t, err)

		planner := &AvailabilityPlanner{Repo: repo, Policy: p}
		slots, err := planner.PlanDay(ctx, day)
		require.NoError(t, err)

		// 9:30-10:00 touches the appointment boundary only.
		assert.Equal(t, 1, slots[1].Available)
		assert.Equal(t, 0, slots[2].Available)
	})

	t.Run("appointments on another day are ignored", func(t *testing.T) {
		repo := newMemRepo()
		_, err := repo.Insert(ctx, &models.Appointment{
			StartAt: local(p, 2030, time.June, 11, 9, 0).UTC(),
			EndAt:   local(p, 2030, time.June, 11, 10, 0).UTC(),
		})
		require.NoError(t, err)

		planner := &AvailabilityPlanner{Repo: repo, Policy: p}
		slots, err := planner.PlanDay(ctx, day)
		require.NoError(t, err)
		for _, s := range slots {
			assert.Equal(t, 1, s.Available)
		}
	})

	t.Run("planning is idempotent", func(t *testing.T) {
		repo := newMemRepo()
		_, err := repo.Insert(ctx, &models.Appointment{
			StartAt: local(p, 2030, time.June, 10, 14, 0).UTC(),
			EndAt:   local(p, 2030, time.June, 10, 15, 0).UTC(),
		})
		require.NoError(t, err)

		planner := &AvailabilityPlanner{Repo: repo, Policy: p}
		first, err := planner.PlanDay(ctx, day)
		require.NoError(t, err)
		second, err := planner.PlanDay(ctx, day)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
