package service

import (
	"context"
	"errors"
	"strings"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/store"
	"github.com/commonhall/commonhall/pkg/slogx"
)

var ErrProfileNotFound = errors.New("profile not found")

const maxNicknameLength = 30

type ProfileService struct {
	Store store.Store
}

// EnsureProfile returns the caller's membership profile, creating it on first
// sight. Identity (id, email, nickname) comes from the verified token claims;
// residency fields start empty until a verification request is approved.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID, email, nickname string) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	p, err := s.Store.Profiles().GetProfileByID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, err
	}

	if nickname == "" {
		// Fall back to the email local part when the provider sends no
		// nickname claim.
		nickname, _, _ = strings.Cut(email, "@")
	}

	p = domain.Profile{
		ID:       userID,
		Email:    email,
		Nickname: nickname,
	}
	if err := s.Store.Profiles().CreateProfile(ctx, p); err != nil {
		// Two first requests racing: the loser re-reads the winner's row.
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.Profiles().GetProfileByID(ctx, userID)
		}
		l.Error("failed to create profile", "error", err, "user_id", userID)
		return domain.Profile{}, err
	}

	l.Info("profile created", "user_id", userID)
	return s.Store.Profiles().GetProfileByID(ctx, userID)
}

// GetProfile fetches a profile by user id.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return p, nil
}

// UpdateNickname changes the caller's display name.
func (s *ProfileService) UpdateNickname(ctx context.Context, userID, nickname string) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return domain.Profile{}, invalidf("nickname is required")
	}
	if len(nickname) > maxNicknameLength {
		return domain.Profile{}, invalidf("nickname exceeds %d characters", maxNicknameLength)
	}

	if err := s.Store.Profiles().UpdateNickname(ctx, userID, nickname); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		l.Error("failed to update nickname", "error", err, "user_id", userID)
		return domain.Profile{}, err
	}

	l.Info("nickname updated", "user_id", userID)
	return s.Store.Profiles().GetProfileByID(ctx, userID)
}
