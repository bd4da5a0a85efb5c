package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

// 2026-02-02 is a Monday.
var earlyMonday = time.Date(2026, 2, 2, 8, 0, 0, 0, ist)

func TestCallSlotsWeekday(t *testing.T) {
	slots, err := CallSlots("2026-02-03", ist, earlyMonday)
	require.NoError(t, err)
	require.Len(t, slots, 14)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "12:30", slots[5])
	assert.Equal(t, "14:00", slots[6])
	assert.Equal(t, "17:30", slots[13])
}

func TestCallSlotsSaturdayAndSunday(t *testing.T) {
	slots, err := CallSlots("2026-02-07", ist, earlyMonday)
	require.NoError(t, err)
	assert.Len(t, slots, 8)

	slots, err = CallSlots("2026-02-08", ist, earlyMonday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCallSlotsDropsStartedSlotsToday(t *testing.T) {
	now := time.Date(2026, 2, 2, 16, 30, 0, 0, ist)
	slots, err := CallSlots("2026-02-02", ist, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"17:00", "17:30"}, slots)
}

func TestCallSlotsPastDate(t *testing.T) {
	slots, err := CallSlots("2026-02-01", ist, earlyMonday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCallSlotsInvalidDate(t *testing.T) {
	_, err := CallSlots("02/03/2026", ist, earlyMonday)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
