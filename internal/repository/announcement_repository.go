package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/moradahub/backend-resident/internal/domain"
)

// AnnouncementRepository provides access to the notification feed.
type AnnouncementRepository interface {
	// List returns announcements, newest first
	List(ctx context.Context) ([]*domain.Announcement, error)

	// GetByID retrieves an announcement by ID
	GetByID(ctx context.Context, id string) (*domain.Announcement, error)

	// MarkRead flags an announcement as read
	MarkRead(ctx context.Context, id string) error

	// CountUnread returns the number of unread announcements
	CountUnread(ctx context.Context) (int, error)
}

type memoryAnnouncementRepository struct {
	mu            sync.RWMutex
	announcements []*domain.Announcement
}

// NewMemoryAnnouncementRepository creates a feed seeded with the given announcements.
func NewMemoryAnnouncementRepository(announcements []*domain.Announcement) AnnouncementRepository {
	return &memoryAnnouncementRepository{announcements: announcements}
}

func (r *memoryAnnouncementRepository) List(ctx context.Context) ([]*domain.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Announcement, 0, len(r.announcements))
	for _, a := range r.announcements {
		clone := *a
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

func (r *memoryAnnouncementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.announcements {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAnnouncementNotFound
}

func (r *memoryAnnouncementRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.announcements {
		if a.ID == id {
			a.Read = true
			return nil
		}
	}
	return domain.ErrAnnouncementNotFound
}

func (r *memoryAnnouncementRepository) CountUnread(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, a := range r.announcements {
		if !a.Read {
			count++
		}
	}
	return count, nil
}
