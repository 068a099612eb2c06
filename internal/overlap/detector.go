package overlap

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EntityKind identifies which participant of an appointment caused a conflict.
type EntityKind string

const (
	KindCustomer EntityKind = "CUSTOMER"
	KindContact  EntityKind = "CONTACT"
)

// Result is the outcome of a conflict check. When Conflict is true,
// ConflictingID and EntityKind identify the existing appointment and the
// shared participant that collided with the candidate.
type Result struct {
	Conflict      bool
	ConflictingID int64
	EntityKind    EntityKind
}

// Detect checks the candidate appointment against every existing appointment
// under the configured per-entity policy. The first match wins, scanning in
// sequence order. excludeID lets an appointment being updated ignore its own
// prior version; pass 0 to exclude nothing (ids are always positive).
//
// Detect is pure and total: it performs no I/O and cannot fail on well-formed
// input (Start < End is validated upstream).
func Detect(candidate *domain.Appointment, existing []*domain.Appointment, policy domain.OverlapPolicy, excludeID int64) Result {
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}

		if policy.CheckByCustomer && other.CustomerID == candidate.CustomerID &&
			Intervals(candidate.Start, candidate.End, other.Start, other.End) {
			return Result{Conflict: true, ConflictingID: other.ID, EntityKind: KindCustomer}
		}

		if policy.CheckByContact && other.ContactID == candidate.ContactID &&
			Intervals(candidate.Start, candidate.End, other.Start, other.End) {
			return Result{Conflict: true, ConflictingID: other.ID, EntityKind: KindContact}
		}
	}

	return Result{}
}

// Intervals reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. The single predicate covers boundary equality, containment in
// either direction and partial overlap on either side; touching intervals
// do not intersect, so back-to-back appointments never conflict.
func Intervals(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
