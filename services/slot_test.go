package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healeasy/healeasy-api/models"
)

func TestCreateSlotValidatesBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)
	doctor := createDoctor(t, db, "drslots", models.DoctorApproved)

	now := time.Now()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start equals end", now, now},
		{"start after end", now.Add(time.Hour), now},
		{"zero start", time.Time{}, now},
		{"zero end", now, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSlot(doctor.ID, tc.start, tc.end)
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}

	slot, err := svc.CreateSlot(doctor.ID, now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, slot.DoctorID)
}

func TestCreateSlotRequiresDoctor(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)

	_, err := svc.CreateSlot(9999, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetSlotsByDoctorInRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)
	doctor := createDoctor(t, db, "drrange", models.DoctorApproved)

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	morning, err := svc.CreateSlot(doctor.ID, day.Add(9*time.Hour), day.Add(10*time.Hour))
	require.NoError(t, err)
	_, err = svc.CreateSlot(doctor.ID, day.Add(30*time.Hour), day.Add(31*time.Hour))
	require.NoError(t, err)

	slots, err := svc.GetSlotsByDoctorInRange(doctor.ID, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, morning.ID, slots[0].ID)

	_, err = svc.GetSlotsByDoctorInRange(doctor.ID, day.Add(time.Hour), day)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateAndDeleteSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewSlotService(db)
	doctor := createDoctor(t, db, "drmodify", models.DoctorApproved)

	now := time.Now()
	slot, err := svc.CreateSlot(doctor.ID, now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.UpdateSlot(slot.ID, now.Add(time.Hour), now)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	updated, err := svc.UpdateSlot(slot.ID, now.Add(time.Hour), now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), updated.StartTime, time.Second)

	require.NoError(t, svc.DeleteSlot(slot.ID))
	_, err = svc.GetSlotByID(slot.ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	err = svc.DeleteSlot(slot.ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
