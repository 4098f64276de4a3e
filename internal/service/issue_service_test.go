package service

import (
	"context"
	"testing"

	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssueService() (IssueService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	clk := clock.NewFixed(testNow)
	return NewIssueService(repository.NewMemoryIssueRepository(clk), notifier, clk), notifier
}

func validIssueRequest() *dto.CreateIssueRequest {
	return &dto.CreateIssueRequest{
		Description:  "Lâmpada queimada no corredor",
		Priority:     "medium",
		LocationType: "common_area",
		CommonArea:   "Corredor Bloco B",
	}
}

func TestIssueService_ReportIssue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateIssueRequest)
		wantErr error
	}{
		{
			name: "valid report",
		},
		{
			name:    "empty description",
			mutate:  func(req *dto.CreateIssueRequest) { req.Description = "" },
			wantErr: domain.ErrEmptyDescription,
		},
		{
			name:    "unknown priority",
			mutate:  func(req *dto.CreateIssueRequest) { req.Priority = "urgent" },
			wantErr: domain.ErrInvalidPriority,
		},
		{
			name:    "empty priority",
			mutate:  func(req *dto.CreateIssueRequest) { req.Priority = "" },
			wantErr: domain.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, notifier := newTestIssueService()
			req := validIssueRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			got, err := svc.ReportIssue(context.Background(), "res-001", req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, notifier.issues)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "open", got.Status)
			assert.Equal(t, "common_area", got.Location.Type)
			assert.Len(t, notifier.issues, 1)
		})
	}
}

func TestIssueService_ReportIssue_AnonymousHidesReporter(t *testing.T) {
	svc, notifier := newTestIssueService()
	req := validIssueRequest()
	req.Anonymous = true

	got, err := svc.ReportIssue(context.Background(), "res-001", req)
	require.NoError(t, err)
	assert.True(t, got.Anonymous)
	require.Len(t, notifier.issues, 1)
	assert.Empty(t, notifier.issues[0].ReporterID)
}

func TestIssueService_ListIssues(t *testing.T) {
	svc, _ := newTestIssueService()
	ctx := context.Background()

	_, err := svc.ReportIssue(ctx, "res-001", validIssueRequest())
	require.NoError(t, err)
	_, err = svc.ReportIssue(ctx, "res-002", validIssueRequest())
	require.NoError(t, err)

	mine, err := svc.ListIssues(ctx, "res-001", domain.RoleResident)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListIssues(ctx, "res-900", domain.RoleManager)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestIssueService_AdvanceStatus(t *testing.T) {
	svc, _ := newTestIssueService()
	ctx := context.Background()

	created, err := svc.ReportIssue(ctx, "res-001", validIssueRequest())
	require.NoError(t, err)

	got, err := svc.AdvanceStatus(ctx, created.ID, "in_progress", "Zelador acionado", "sindico@example.com")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", got.Status)

	got, err = svc.AdvanceStatus(ctx, created.ID, "resolved", "Lâmpada trocada", "sindico@example.com")
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status)
	assert.Len(t, got.Comments, 2)

	// Resolved is terminal.
	_, err = svc.AdvanceStatus(ctx, created.ID, "open", "reabrir", "sindico@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.AdvanceStatus(ctx, created.ID, "archived", "x", "sindico@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.AdvanceStatus(ctx, created.ID, "resolved", "", "sindico@example.com")
	assert.ErrorIs(t, err, domain.ErrEmptyComment)

	_, err = svc.AdvanceStatus(ctx, "missing", "resolved", "ok", "sindico@example.com")
	assert.ErrorIs(t, err, domain.ErrIssueNotFound)
}

func TestIssueService_OpenCanSkipToResolved(t *testing.T) {
	svc, _ := newTestIssueService()
	ctx := context.Background()

	created, err := svc.ReportIssue(ctx, "res-001", validIssueRequest())
	require.NoError(t, err)

	got, err := svc.AdvanceStatus(ctx, created.ID, "resolved", "Resolvido direto", "sindico@example.com")
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status)
}
