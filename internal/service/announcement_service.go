package service

import (
	"context"

	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
)

// AnnouncementService defines the interface for the notification feed
type AnnouncementService interface {
	// Feed returns all announcements, newest first, with the unread count
	Feed(ctx context.Context) (*dto.AnnouncementFeedResponse, error)

	// MarkRead flags an announcement as read and returns it
	MarkRead(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) Feed(ctx context.Context) (*dto.AnnouncementFeedResponse, error) {
	announcements, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, dto.FromAnnouncement(a))
	}
	return &dto.AnnouncementFeedResponse{
		Announcements: out,
		UnreadCount:   unread,
	}, nil
}

func (s *announcementService) MarkRead(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	announcement, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromAnnouncement(announcement), nil
}
