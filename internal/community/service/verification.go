package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/store"
	"github.com/commonhall/commonhall/pkg/idx"
	"github.com/commonhall/commonhall/pkg/slogx"
)

var (
	ErrPendingRequestExists   = errors.New("a pending verification request already exists")
	ErrRequestNotFound        = errors.New("verification request not found")
	ErrRequestAlreadyReviewed = errors.New("verification request already reviewed")
)

// VerificationService runs the residency verification workflow. The approval
// policy is injected: auto-approve runs the same approve transition as a
// manual review, just inside the submission transaction.
type VerificationService struct {
	Store  store.Store
	Policy domain.ApprovalPolicy
}

// Submit files a residency claim for userID against a building/floor.
// Returns ErrBuildingNotFound for a dangling building reference and
// ErrPendingRequestExists when the user already has an open request.
func (s *VerificationService) Submit(ctx context.Context, userID, buildingID, floor, documentURL string) (domain.VerificationRequest, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate input
	floor = strings.TrimSpace(floor)
	documentURL = strings.TrimSpace(documentURL)
	if floor == "" {
		return domain.VerificationRequest{}, invalidf("floor is required")
	}
	if documentURL == "" {
		return domain.VerificationRequest{}, invalidf("document_url is required")
	}

	// 2. The building must exist before anything is written
	if _, err := s.Store.Buildings().GetBuildingByID(ctx, buildingID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.VerificationRequest{}, ErrBuildingNotFound
		}
		return domain.VerificationRequest{}, err
	}

	vr := domain.VerificationRequest{
		ID:          idx.New().String(),
		UserID:      userID,
		BuildingID:  buildingID,
		Floor:       floor,
		DocumentURL: documentURL,
		Status:      domain.VerificationPending,
		CreatedAt:   time.Now().UTC(),
	}

	// 3. Create the request, and under auto-approve run the approve
	// transition in the same transaction so submit-and-approve is one
	// atomic unit.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.VerificationRequests().CreateVerificationRequest(ctx, vr); err != nil {
			return err
		}
		if s.Policy == domain.PolicyAutoApprove {
			return approve(ctx, tx, vr, time.Now().UTC())
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.VerificationRequest{}, ErrPendingRequestExists
		}
		l.Error("failed to submit verification request", "error", err, "user_id", userID)
		return domain.VerificationRequest{}, err
	}

	l.Info("verification request submitted",
		"request_id", vr.ID, "user_id", userID, "building_id", buildingID, "policy", s.Policy)
	return s.Store.VerificationRequests().GetVerificationRequestByID(ctx, vr.ID)
}

// Status reports the caller's residency state: the profile's verified
// building/floor plus the open request, if one exists.
func (s *VerificationService) Status(ctx context.Context, userID string) (domain.Profile, *domain.VerificationRequest, error) {
	p, err := s.Store.Profiles().GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, nil, ErrProfileNotFound
		}
		return domain.Profile{}, nil, err
	}

	pending, err := s.Store.VerificationRequests().GetPendingByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return p, nil, nil
		}
		return domain.Profile{}, nil, err
	}
	return p, &pending, nil
}

// ListPending returns the administrator review queue, oldest first.
func (s *VerificationService) ListPending(ctx context.Context) ([]domain.VerificationRequest, error) {
	return s.Store.VerificationRequests().ListByStatus(ctx, domain.VerificationPending)
}

// Review applies an administrator decision to a pending request. The first
// decision wins; a second review of the same request returns
// ErrRequestAlreadyReviewed no matter which decision landed first.
func (s *VerificationService) Review(ctx context.Context, requestID string, decision domain.ReviewDecision) (domain.VerificationRequest, error) {
	l := slogx.FromContext(ctx)

	if decision != domain.DecisionApprove && decision != domain.DecisionReject {
		return domain.VerificationRequest{}, invalidf("decision must be approve or reject")
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		vr, err := tx.VerificationRequests().GetVerificationRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if vr.Status.Terminal() {
			return ErrRequestAlreadyReviewed
		}

		now := time.Now().UTC()
		if decision == domain.DecisionApprove {
			return approve(ctx, tx, vr, now)
		}
		return reject(ctx, tx, vr, now)
	})
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) || errors.Is(err, ErrRequestAlreadyReviewed) {
			return domain.VerificationRequest{}, err
		}
		l.Error("failed to review verification request", "error", err, "request_id", requestID)
		return domain.VerificationRequest{}, err
	}

	l.Info("verification request reviewed", "request_id", requestID, "decision", decision)
	return s.Store.VerificationRequests().GetVerificationRequestByID(ctx, requestID)
}

// approve is the single approving transition used by both policies. It flips
// the request out of pending and stamps the profile's residency in the same
// transaction. The pending guard inside MarkReviewed turns a lost race into
// ErrRequestAlreadyReviewed.
func approve(ctx context.Context, tx store.Tx, vr domain.VerificationRequest, now time.Time) error {
	err := tx.VerificationRequests().MarkReviewed(ctx, vr.ID, domain.VerificationApproved, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRequestAlreadyReviewed
		}
		return err
	}
	return tx.Profiles().SetResidency(ctx, vr.UserID, vr.BuildingID, vr.Floor, true)
}

// reject flips the request out of pending and leaves the profile untouched,
// so a previously approved residency survives a rejected re-verification.
func reject(ctx context.Context, tx store.Tx, vr domain.VerificationRequest, now time.Time) error {
	err := tx.VerificationRequests().MarkReviewed(ctx, vr.ID, domain.VerificationRejected, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRequestAlreadyReviewed
		}
		return err
	}
	return nil
}
