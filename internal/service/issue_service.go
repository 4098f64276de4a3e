package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
)

// IssueService defines the interface for resident issue reports
type IssueService interface {
	// ReportIssue registers a new occurrence for the manager
	ReportIssue(ctx context.Context, residentID string, req *dto.CreateIssueRequest) (*dto.IssueResponse, error)

	// ListIssues returns the resident's own reports; managers see all
	ListIssues(ctx context.Context, residentID string, role domain.Role) ([]*dto.IssueResponse, error)

	// AdvanceStatus is the manager-side lifecycle operation
	AdvanceStatus(ctx context.Context, id, newStatus, comment, author string) (*dto.IssueResponse, error)
}

type issueService struct {
	repo     repository.IssueRepository
	notifier Notifier
	clock    clock.Clock
}

// NewIssueService creates a new issue service
func NewIssueService(repo repository.IssueRepository, notifier Notifier, clk clock.Clock) IssueService {
	if notifier == nil {
		notifier = NewNoOpNotifier()
	}
	return &issueService{repo: repo, notifier: notifier, clock: clk}
}

func (s *issueService) ReportIssue(ctx context.Context, residentID string, req *dto.CreateIssueRequest) (*dto.IssueResponse, error) {
	if req.Description == "" {
		return nil, domain.ErrEmptyDescription
	}
	priority := domain.Priority(req.Priority)
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	reporterID := residentID
	if req.Anonymous {
		reporterID = ""
	}

	now := s.clock.Now()
	issue := &domain.Issue{
		ID:          uuid.New().String(),
		ReporterID:  reporterID,
		Description: req.Description,
		Priority:    priority,
		Location: domain.IssueLocation{
			Type:       req.LocationType,
			CommonArea: req.CommonArea,
			Block:      req.Block,
			Floor:      req.Floor,
		},
		Anonymous: req.Anonymous,
		Status:    domain.IssueStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.notifier.IssueReported(ctx, issue)
	return dto.FromIssue(issue), nil
}

func (s *issueService) ListIssues(ctx context.Context, residentID string, role domain.Role) ([]*dto.IssueResponse, error) {
	reporterFilter := residentID
	if role == domain.RoleManager {
		reporterFilter = ""
	}
	issues, err := s.repo.List(ctx, reporterFilter)
	if err != nil {
		return nil, err
	}
	return dto.FromIssues(issues), nil
}

func (s *issueService) AdvanceStatus(ctx context.Context, id, newStatus, comment, author string) (*dto.IssueResponse, error) {
	status := domain.IssueStatus(newStatus)
	if !status.IsValid() {
		return nil, domain.ErrInvalidTransition
	}
	if comment == "" {
		return nil, domain.ErrEmptyComment
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if err := s.repo.AppendComment(ctx, id, domain.Comment{
		Author:    author,
		Text:      comment,
		CreatedAt: s.clock.Now(),
	}); err != nil {
		return nil, err
	}

	issue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromIssue(issue), nil
}
