package http

import (
	"time"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/pkg/residentsdk"
)

func toBuildingInfo(b domain.Building) residentsdk.BuildingInfo {
	return residentsdk.BuildingInfo{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func toRequestInfo(vr domain.VerificationRequest) residentsdk.VerificationRequestInfo {
	info := residentsdk.VerificationRequestInfo{
		ID:         vr.ID,
		UserID:     vr.UserID,
		BuildingID: vr.BuildingID,
		Floor:      vr.Floor,
		Status:     string(vr.Status),
		CreatedAt:  vr.CreatedAt.Format(time.RFC3339),
	}
	if vr.ReviewedAt != nil {
		info.ReviewedAt = vr.ReviewedAt.Format(time.RFC3339)
	}
	return info
}

func toProfileResponse(p domain.Profile) residentsdk.ProfileResponse {
	resp := residentsdk.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Nickname:  p.Nickname,
		Floor:     p.Floor,
		Verified:  p.Verified,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.BuildingID != nil {
		resp.BuildingID = *p.BuildingID
	}
	return resp
}

func toAuthorInfo(a *domain.Author) *residentsdk.AuthorInfo {
	if a == nil {
		return nil
	}
	return &residentsdk.AuthorInfo{
		Nickname: a.Nickname,
		Floor:    a.Floor,
	}
}

func toPostInfo(p domain.Post, liked bool) residentsdk.PostInfo {
	return residentsdk.PostInfo{
		ID:            p.ID,
		BoardType:     string(p.BoardType),
		Title:         p.Title,
		Content:       p.Content,
		AuthorID:      p.AuthorID,
		BuildingID:    p.BuildingID,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		Liked:         liked,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
		Author:        toAuthorInfo(p.Author),
	}
}

func toCommentInfo(c domain.Comment) residentsdk.CommentInfo {
	return residentsdk.CommentInfo{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		Author:    toAuthorInfo(c.Author),
	}
}
