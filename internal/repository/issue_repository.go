package repository

import (
	"context"
	"sync"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
)

// IssueRepository provides access to resident issue reports.
type IssueRepository interface {
	// Create inserts a new issue report
	Create(ctx context.Context, issue *domain.Issue) error

	// GetByID retrieves an issue by ID
	GetByID(ctx context.Context, id string) (*domain.Issue, error)

	// List returns issues in creation order; residentID narrows to one reporter
	List(ctx context.Context, residentID string) ([]*domain.Issue, error)

	// UpdateStatus transitions an issue to a new status, enforcing the
	// lifecycle rules
	UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error

	// AppendComment appends a comment to an issue's trail
	AppendComment(ctx context.Context, id string, comment domain.Comment) error
}

type memoryIssueRepository struct {
	mu     sync.RWMutex
	issues []*domain.Issue
	byID   map[string]*domain.Issue
	clock  clock.Clock
}

// NewMemoryIssueRepository creates an empty in-memory issue store.
func NewMemoryIssueRepository(clk clock.Clock) IssueRepository {
	return &memoryIssueRepository{
		byID:  make(map[string]*domain.Issue),
		clock: clk,
	}
}

func (r *memoryIssueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneIssue(issue)
	r.issues = append(r.issues, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *memoryIssueRepository) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	return cloneIssue(stored), nil
}

func (r *memoryIssueRepository) List(ctx context.Context, residentID string) ([]*domain.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Issue, 0, len(r.issues))
	for _, stored := range r.issues {
		if residentID != "" && stored.ReporterID != residentID {
			continue
		}
		out = append(out, cloneIssue(stored))
	}
	return out, nil
}

func (r *memoryIssueRepository) UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return domain.ErrIssueNotFound
	}
	if !stored.Status.CanTransition(status) {
		return domain.ErrInvalidTransition
	}
	stored.Status = status
	stored.UpdatedAt = r.clock.Now()
	return nil
}

func (r *memoryIssueRepository) AppendComment(ctx context.Context, id string, comment domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return domain.ErrIssueNotFound
	}
	stored.Comments = append(stored.Comments, comment)
	stored.UpdatedAt = r.clock.Now()
	return nil
}

func cloneIssue(issue *domain.Issue) *domain.Issue {
	clone := *issue
	clone.Comments = make([]domain.Comment, len(issue.Comments))
	copy(clone.Comments, issue.Comments)
	return &clone
}
