package overlap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.October, 15, hour, min, 0, 0, time.UTC)
}

func TestIntervals(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"second inside first", at(10, 0), at(12, 0), at(10, 30), at(11, 30), true},
		{"first inside second", at(10, 30), at(11, 30), at(10, 0), at(12, 0), true},
		{"partial overlap left", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"partial overlap right", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"back to back", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"back to back reversed", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(14, 0), at(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intervals(tt.s1, tt.e1, tt.s2, tt.e2))
			// the predicate is symmetric in the two intervals
			assert.Equal(t, tt.want, Intervals(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func appt(id, customerID, contactID int64, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		CustomerID: customerID,
		ContactID:  contactID,
		Start:      start,
		End:        end,
	}
}

func TestDetect_CustomerConflict(t *testing.T) {
	policy := domain.OverlapPolicy{CheckByCustomer: true}
	existing := []*domain.Appointment{
		appt(1, 7, 3, at(9, 0), at(10, 0)),
		appt(2, 7, 3, at(10, 0), at(11, 0)),
	}

	candidate := appt(0, 7, 4, at(10, 30), at(11, 30))
	res := Detect(candidate, existing, policy, 0)

	assert.True(t, res.Conflict)
	assert.Equal(t, int64(2), res.ConflictingID)
	assert.Equal(t, KindCustomer, res.EntityKind)
}

func TestDetect_DifferentCustomerNoConflict(t *testing.T) {
	policy := domain.OverlapPolicy{CheckByCustomer: true}
	existing := []*domain.Appointment{
		appt(1, 7, 3, at(10, 0), at(11, 0)),
	}

	candidate := appt(0, 8, 3, at(10, 0), at(11, 0))
	res := Detect(candidate, existing, policy, 0)

	assert.False(t, res.Conflict)
}

func TestDetect_ContactConflictWhenEnabled(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, 7, 3, at(10, 0), at(11, 0)),
	}
	candidate := appt(0, 8, 3, at(10, 30), at(11, 30))

	// contact checking off: shared contact does not conflict
	res := Detect(candidate, existing, domain.OverlapPolicy{CheckByCustomer: true}, 0)
	assert.False(t, res.Conflict)

	// contact checking on: same interval now conflicts
	res = Detect(candidate, existing, domain.OverlapPolicy{CheckByContact: true}, 0)
	assert.True(t, res.Conflict)
	assert.Equal(t, KindContact, res.EntityKind)
	assert.Equal(t, int64(1), res.ConflictingID)
}

func TestDetect_PolicyDisabled(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, 7, 3, at(10, 0), at(11, 0)),
	}
	candidate := appt(0, 7, 3, at(10, 0), at(11, 0))

	res := Detect(candidate, existing, domain.OverlapPolicy{}, 0)
	assert.False(t, res.Conflict)
}

func TestDetect_ExcludeID(t *testing.T) {
	policy := domain.OverlapPolicy{CheckByCustomer: true}
	existing := []*domain.Appointment{
		appt(5, 7, 3, at(10, 0), at(11, 0)),
	}

	// an update rescheduling appointment 5 must not collide with itself
	candidate := appt(5, 7, 3, at(10, 30), at(11, 30))
	res := Detect(candidate, existing, policy, 5)
	assert.False(t, res.Conflict)

	// but it still collides with anyone else
	existing = append(existing, appt(6, 7, 3, at(10, 45), at(11, 45)))
	res = Detect(candidate, existing, policy, 5)
	assert.True(t, res.Conflict)
	assert.Equal(t, int64(6), res.ConflictingID)
}

func TestDetect_BackToBackNoConflict(t *testing.T) {
	policy := domain.OverlapPolicy{CheckByCustomer: true, CheckByContact: true}
	existing := []*domain.Appointment{
		appt(1, 7, 3, at(9, 0), at(10, 0)),
	}

	candidate := appt(0, 7, 3, at(10, 0), at(11, 0))
	res := Detect(candidate, existing, policy, 0)
	assert.False(t, res.Conflict)
}

func TestDetect_CustomerCheckedBeforeContact(t *testing.T) {
	policy := domain.OverlapPolicy{CheckByCustomer: true, CheckByContact: true}
	existing := []*domain.Appointment{
		appt(1, 7, 3, at(10, 0), at(11, 0)),
	}

	// candidate shares both participants: the customer match is reported
	candidate := appt(0, 7, 3, at(10, 30), at(11, 30))
	res := Detect(candidate, existing, policy, 0)

	assert.True(t, res.Conflict)
	assert.Equal(t, KindCustomer, res.EntityKind)
}
