package domain

import "time"

// VerificationStatus is the workflow state of a residency claim.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Valid reports whether s is one of the known workflow states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transition.
// Rejected is terminal for the request but not for the user, who may
// resubmit with a fresh request.
func (s VerificationStatus) Terminal() bool {
	return s == VerificationApproved || s == VerificationRejected
}

// VerificationRequest is one workflow instance asserting a user's residency
// at a building/floor. A request mutates exactly once (pending -> approved or
// pending -> rejected) and is immutable afterwards.
type VerificationRequest struct {
	ID          string
	UserID      string
	BuildingID  string
	Floor       string
	DocumentURL string // opaque object-storage reference, stored verbatim
	Status      VerificationStatus
	CreatedAt   time.Time
	ReviewedAt  *time.Time // nil while pending
}

// ApprovalPolicy decides what happens to a freshly submitted request.
// It is a configuration choice injected into the workflow engine; the state
// machine itself has a single transition function regardless of policy.
type ApprovalPolicy string

const (
	// PolicyAutoApprove transitions new requests to approved immediately,
	// within the same transaction as the submission.
	PolicyAutoApprove ApprovalPolicy = "auto"

	// PolicyManualReview leaves new requests pending until an administrator
	// decides.
	PolicyManualReview ApprovalPolicy = "manual"
)

// ReviewDecision is an administrator's verdict on a pending request.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)
