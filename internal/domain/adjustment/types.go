package adjustment

// Status is the adjustment request state machine:
//
//	pending_homeowner ──approve──▶ approved
//	        │
//	      deny
//	        ▼
//	  pending_owner ──▶ owner_approved | owner_denied
//
// A request left in pending_homeowner past its expiry becomes eligible for
// direct escalation resolution without a recorded transition.
type Status string

const (
	StatusPendingHomeowner Status = "pending_homeowner"
	StatusApproved         Status = "approved"
	StatusPendingOwner     Status = "pending_owner"
	StatusOwnerApproved    Status = "owner_approved"
	StatusOwnerDenied      Status = "owner_denied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingHomeowner, StatusApproved, StatusPendingOwner, StatusOwnerApproved, StatusOwnerDenied:
		return true
	default:
		return false
	}
}

// IsResolved reports whether the request reached a terminal state.
func (s Status) IsResolved() bool {
	switch s {
	case StatusApproved, StatusOwnerApproved, StatusOwnerDenied:
		return true
	default:
		return false
	}
}

type ChargeStatus string

const (
	ChargeWaived    ChargeStatus = "waived"
	ChargePending   ChargeStatus = "pending"
	ChargeSucceeded ChargeStatus = "succeeded"
	ChargeFailed    ChargeStatus = "failed"
)

func (c ChargeStatus) String() string {
	return string(c)
}

type RoomType string

const (
	RoomBedroom  RoomType = "bedroom"
	RoomBathroom RoomType = "bathroom"
)

func (r RoomType) IsValid() bool {
	return r == RoomBedroom || r == RoomBathroom
}
