package domain

import "time"

// IssueStatus represents the lifecycle state of an issue report.
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "open"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusResolved   IssueStatus = "resolved"
)

var validIssueNext = map[IssueStatus]map[IssueStatus]bool{
	IssueStatusOpen:       {IssueStatusInProgress: true, IssueStatusResolved: true},
	IssueStatusInProgress: {IssueStatusResolved: true},
	IssueStatusResolved:   {},
}

// CanTransition reports whether an issue may move from one status to another.
func (s IssueStatus) CanTransition(to IssueStatus) bool {
	return validIssueNext[s][to]
}

// IsValid reports whether the status is one of the known states.
func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusOpen, IssueStatusInProgress, IssueStatusResolved:
		return true
	}
	return false
}

// IssueLocation identifies where the reported problem happened.
type IssueLocation struct {
	Type       string `json:"type"` // common_area or unit
	CommonArea string `json:"common_area,omitempty"`
	Block      string `json:"block,omitempty"`
	Floor      string `json:"floor,omitempty"`
}

// Issue represents a resident-reported occurrence for the manager to act on.
type Issue struct {
	ID          string        `json:"id"`
	ReporterID  string        `json:"reporter_id,omitempty"` // empty when anonymous
	Description string        `json:"description"`
	Priority    Priority      `json:"priority"`
	Location    IssueLocation `json:"location"`
	Anonymous   bool          `json:"anonymous"`
	Status      IssueStatus   `json:"status"`
	Comments    []Comment     `json:"comments"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
