package service

import (
	"context"

	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/logger"
	"go.uber.org/zap"
)

// Notifier is the outbound messaging boundary. The mock backend has no
// delivery channel, so implementations only observe the events; a real
// backend would push to the manager/resident here.
type Notifier interface {
	// ReservationCreated signals the manager that a new request needs approval
	ReservationCreated(ctx context.Context, reservation *domain.Reservation)

	// ReservationCancelled signals that a reservation was withdrawn
	ReservationCancelled(ctx context.Context, reservation *domain.Reservation)

	// ReservationStatusChanged signals the resident of a manager decision
	ReservationStatusChanged(ctx context.Context, reservation *domain.Reservation)

	// IssueReported signals the manager of a new issue report
	IssueReported(ctx context.Context, issue *domain.Issue)
}

// NoOpNotifier discards all events.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a notifier that does nothing.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

func (n *NoOpNotifier) ReservationCreated(ctx context.Context, reservation *domain.Reservation) {}

func (n *NoOpNotifier) ReservationCancelled(ctx context.Context, reservation *domain.Reservation) {}

func (n *NoOpNotifier) ReservationStatusChanged(ctx context.Context, reservation *domain.Reservation) {
}

func (n *NoOpNotifier) IssueReported(ctx context.Context, issue *domain.Issue) {}

// LogNotifier writes every event to the application log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ReservationCreated(ctx context.Context, reservation *domain.Reservation) {
	n.log.Info("reservation requested",
		zap.String("reservation_id", reservation.ID),
		zap.String("environment", reservation.EnvironmentName),
		zap.String("date", reservation.Date),
		zap.String("time_slot", reservation.TimeSlot),
	)
}

func (n *LogNotifier) ReservationCancelled(ctx context.Context, reservation *domain.Reservation) {
	n.log.Info("reservation cancelled",
		zap.String("reservation_id", reservation.ID),
		zap.String("environment", reservation.EnvironmentName),
	)
}

func (n *LogNotifier) ReservationStatusChanged(ctx context.Context, reservation *domain.Reservation) {
	n.log.Info("reservation status changed",
		zap.String("reservation_id", reservation.ID),
		zap.String("status", string(reservation.Status)),
	)
}

func (n *LogNotifier) IssueReported(ctx context.Context, issue *domain.Issue) {
	n.log.Info("issue reported",
		zap.String("issue_id", issue.ID),
		zap.String("priority", string(issue.Priority)),
	)
}
