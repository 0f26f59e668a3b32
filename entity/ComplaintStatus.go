package entity

// ComplaintStatus is a closed set; every transition site switches over it
// exhaustively so a new status cannot sneak past the compiler unchecked.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusCancelled  ComplaintStatus = "cancelled"
)

// ParseComplaintStatus maps external input to a status.
// "completed" is accepted as a reporting synonym of resolved.
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch s {
	case "pending":
		return StatusPending, true
	case "in_progress":
		return StatusInProgress, true
	case "resolved", "completed":
		return StatusResolved, true
	case "cancelled":
		return StatusCancelled, true
	default:
		return "", false
	}
}

func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further transition.
func (s ComplaintStatus) Terminal() bool {
	return s == StatusResolved || s == StatusCancelled
}

// CanTransition reports whether target is reachable from s in one step.
// A no-op (s == target) is not a legal transition.
func (s ComplaintStatus) CanTransition(target ComplaintStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusResolved || target == StatusCancelled
	case StatusResolved, StatusCancelled:
		return false
	}
	return false
}
