package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/repository"
)

// systemAuthor signs the comment appended automatically at creation time.
const systemAuthor = "system"

// ListReservationsQuery narrows and orders a reservation listing.
type ListReservationsQuery struct {
	ResidentID     string
	EnvironmentRef string
	DateFrom       string
	DateTo         string
	Status         string
	// Descending orders by date and slot, newest first (history views);
	// the default is ascending (upcoming views).
	Descending bool
}

// ReservationService defines the interface for the reservation core
type ReservationService interface {
	// ListEnvironments returns the amenity catalog in insertion order
	ListEnvironments(ctx context.Context) ([]*domain.Environment, error)

	// AvailableSlots computes the free slots of an environment on a date
	AvailableSlots(ctx context.Context, environmentRef, date string) (*dto.AvailabilityResponse, error)

	// CreateReservation books a slot, entering the lifecycle as pending
	CreateReservation(ctx context.Context, residentID string, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)

	// ListReservations returns reservations matching the query
	ListReservations(ctx context.Context, query ListReservationsQuery) ([]*dto.ReservationResponse, error)

	// GetReservation retrieves one reservation, enforcing ownership
	GetReservation(ctx context.Context, id, residentID string, role domain.Role) (*dto.ReservationResponse, error)

	// CancelReservation withdraws a pending or confirmed reservation
	CancelReservation(ctx context.Context, id, residentID string, role domain.Role) error

	// AddComment appends a comment; permitted in any status
	AddComment(ctx context.Context, id, author, text string) error

	// AdvanceStatus is the manager-side lifecycle operation
	AdvanceStatus(ctx context.Context, id, newStatus, comment, author string) (*dto.ReservationResponse, error)
}

// reservationService implements ReservationService
type reservationService struct {
	reservationRepo repository.ReservationRepository
	environmentRepo repository.EnvironmentRepository
	notifier        Notifier
	clock           clock.Clock
}

// NewReservationService creates a new reservation service
func NewReservationService(
	reservationRepo repository.ReservationRepository,
	environmentRepo repository.EnvironmentRepository,
	notifier Notifier,
	clk clock.Clock,
) ReservationService {
	if notifier == nil {
		notifier = NewNoOpNotifier()
	}
	return &reservationService{
		reservationRepo: reservationRepo,
		environmentRepo: environmentRepo,
		notifier:        notifier,
		clock:           clk,
	}
}

func (s *reservationService) ListEnvironments(ctx context.Context) ([]*domain.Environment, error) {
	return s.environmentRepo.List(ctx)
}

// AvailableSlots returns the daily window minus the slots held by
// non-cancelled reservations. Recomputed from the store on every call.
func (s *reservationService) AvailableSlots(ctx context.Context, environmentRef, date string) (*dto.AvailabilityResponse, error) {
	env, err := s.environmentRepo.GetByRef(ctx, environmentRef)
	if err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, domain.ErrInvalidSlot
	}

	booked, err := s.bookedSlots(ctx, env.ID, date)
	if err != nil {
		return nil, err
	}

	free := make([]string, 0, domain.LastSlotHour-domain.FirstSlotHour+1)
	for _, slot := range domain.AllSlots() {
		if !booked[slot] {
			free = append(free, slot)
		}
	}

	return &dto.AvailabilityResponse{
		EnvironmentID:  env.ID,
		Date:           date,
		AvailableSlots: free,
	}, nil
}

func (s *reservationService) CreateReservation(ctx context.Context, residentID string, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	env, err := s.environmentRepo.GetByRef(ctx, req.EnvironmentRef)
	if err != nil {
		return nil, err
	}
	if !env.Available {
		return nil, domain.ErrEnvironmentUnavailable
	}

	if !domain.IsValidSlot(req.TimeSlot) {
		return nil, domain.ErrInvalidSlot
	}
	if _, err := domain.ParseDate(req.Date); err != nil {
		return nil, domain.ErrInvalidSlot
	}
	// Dates are YYYY-MM-DD, so lexical comparison is chronological.
	today := s.clock.Now().Format(domain.DateLayout)
	if req.Date < today {
		return nil, domain.ErrInvalidSlot
	}

	now := s.clock.Now()
	reservation := &domain.Reservation{
		ID:               uuid.New().String(),
		ResidentID:       residentID,
		EnvironmentID:    env.ID,
		EnvironmentName:  env.Name,
		Date:             req.Date,
		TimeSlot:         req.TimeSlot,
		Status:           domain.ReservationStatusPending,
		ConfirmationCode: generateConfirmationCode(env.Name),
		Comments: []domain.Comment{{
			Author:    systemAuthor,
			Text:      "Solicitação de reserva registrada. Aguardando aprovação do síndico.",
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The repository re-checks the slot under its own lock, so the
	// availability check and the insert cannot interleave.
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.notifier.ReservationCreated(ctx, reservation)
	return dto.FromReservation(reservation), nil
}

func (s *reservationService) ListReservations(ctx context.Context, query ListReservationsQuery) ([]*dto.ReservationResponse, error) {
	filter := repository.ReservationFilter{
		ResidentID: query.ResidentID,
		DateFrom:   query.DateFrom,
		DateTo:     query.DateTo,
	}
	if query.EnvironmentRef != "" {
		env, err := s.environmentRepo.GetByRef(ctx, query.EnvironmentRef)
		if err != nil {
			return nil, err
		}
		filter.EnvironmentID = env.ID
	}
	if query.Status != "" {
		status := domain.ReservationStatus(query.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidTransition
		}
		filter.Status = status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		a, b := reservations[i], reservations[j]
		if query.Descending {
			a, b = b, a
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.TimeSlot < b.TimeSlot
	})

	return dto.FromReservations(reservations), nil
}

func (s *reservationService) GetReservation(ctx context.Context, id, residentID string, role domain.Role) (*dto.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleManager && !reservation.BelongsToResident(residentID) {
		return nil, domain.ErrNotOwner
	}
	return dto.FromReservation(reservation), nil
}

func (s *reservationService) CancelReservation(ctx context.Context, id, residentID string, role domain.Role) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role != domain.RoleManager && !reservation.BelongsToResident(residentID) {
		return domain.ErrNotOwner
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.ReservationStatusCancelled); err != nil {
		return err
	}

	reservation.Status = domain.ReservationStatusCancelled
	s.notifier.ReservationCancelled(ctx, reservation)
	return nil
}

func (s *reservationService) AddComment(ctx context.Context, id, author, text string) error {
	if author == "" {
		return domain.ErrEmptyAuthor
	}
	if text == "" {
		return domain.ErrEmptyComment
	}
	return s.reservationRepo.AppendComment(ctx, id, domain.Comment{
		Author:    author,
		Text:      text,
		CreatedAt: s.clock.Now(),
	})
}

func (s *reservationService) AdvanceStatus(ctx context.Context, id, newStatus, comment, author string) (*dto.ReservationResponse, error) {
	status := domain.ReservationStatus(newStatus)
	if !status.IsValid() {
		return nil, domain.ErrInvalidTransition
	}
	if comment == "" {
		return nil, domain.ErrEmptyComment
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if err := s.reservationRepo.AppendComment(ctx, id, domain.Comment{
		Author:    author,
		Text:      comment,
		CreatedAt: s.clock.Now(),
	}); err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ReservationStatusChanged(ctx, reservation)
	return dto.FromReservation(reservation), nil
}

func (s *reservationService) bookedSlots(ctx context.Context, environmentID, date string) (map[string]bool, error) {
	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{
		EnvironmentID: environmentID,
		DateFrom:      date,
		DateTo:        date,
	})
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(reservations))
	for _, r := range reservations {
		if !r.IsCancelled() {
			booked[r.TimeSlot] = true
		}
	}
	return booked, nil
}
