package service

import (
	"context"
	"time"

	"github.com/campsite/booking-service/booking/internal/errs"
	"github.com/campsite/booking-service/booking/internal/model"
	"github.com/campsite/booking-service/booking/internal/repository"
	"github.com/campsite/booking-service/pkg/retry"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config holds the booking rules and the retry bounds for lock-timeout
// failures. Updates get more attempts than creates: an update holds a booking
// the client already owns, so giving up early is more costly.
type Config struct {
	MaxStayDays  int
	WindowMonths int

	CreateRetryAttempts int
	UpdateRetryAttempts int
	RetryInitialDelay   time.Duration
	RetryMaxDelay       time.Duration
}

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	cfg  Config

	createRetry retry.Retryer
	updateRetry retry.Retryer
	today       func() model.Date
}

type Option func(*Service)

// WithRetryers replaces the retry wrappers, used by tests to drop the waits.
func WithRetryers(create, update retry.Retryer) Option {
	return func(s *Service) {
		s.createRetry = create
		s.updateRetry = update
	}
}

// WithToday fixes the clock the booking window is validated against.
func WithToday(today func() model.Date) Option {
	return func(s *Service) { s.today = today }
}

func NewService(repo repository.Repository, cfg Config, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:         log.Named("service"),
		repo:        repo,
		cfg:         cfg,
		createRetry: retry.New(cfg.CreateRetryAttempts, cfg.RetryInitialDelay, cfg.RetryMaxDelay),
		updateRetry: retry.New(cfg.UpdateRetryAttempts, cfg.RetryInitialDelay, cfg.RetryMaxDelay),
		today:       model.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking reserves the requested dates. The availability check and the
// insert run in one transaction under the exclusive range lock, so of N
// concurrent conflicting requests exactly one commits and the rest observe
// errs.ErrDatesNotAvailable. Lock-wait expiry is retried from the top.
func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	if err := s.validateDates(req.StartDate, req.EndDate); err != nil {
		return model.Booking{}, err
	}
	if _, err := s.repo.GetCampsite(ctx, req.CampsiteID); err != nil {
		return model.Booking{}, errors.WithMessage(err, "campsite")
	}

	var created model.Booking
	err := s.createRetry.Do(ctx, func(ctx context.Context) error {
		return s.repo.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
			locked, err := s.repo.FindForDateRangeWithLock(ctx, tx, req.CampsiteID, req.StartDate, req.EndDate)
			if err != nil {
				return err
			}
			if err := ensureAvailable(req.StartDate, req.EndDate, locked); err != nil {
				return err
			}
			created, err = s.repo.Insert(ctx, tx, model.Booking{
				BookingUID: uuid.NewString(),
				CampsiteID: req.CampsiteID,
				Email:      req.Email,
				FullName:   req.FullName,
				StartDate:  req.StartDate,
				EndDate:    req.EndDate,
				Active:     true,
				Version:    0,
			})
			return err
		})
	}, errs.Retryable)
	if err != nil {
		return model.Booking{}, err
	}
	s.log.Info("booking created",
		zap.String("bookingUid", created.BookingUID),
		zap.Int("campsiteId", created.CampsiteID))
	return created, nil
}

// UpdateBooking moves an active booking to new dates or holder info. The new
// range is re-checked under the lock excluding the booking itself (a booking
// may always keep its own dates), then the write is guarded by the optimistic
// version the caller read.
func (s *Service) UpdateBooking(ctx context.Context, req model.UpdateBookingRequest) (model.Booking, error) {
	if !req.Active {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "status cannot be changed on update, use cancel")
	}
	if err := s.validateDates(req.StartDate, req.EndDate); err != nil {
		return model.Booking{}, err
	}
	existing, err := s.repo.FindByUID(ctx, req.BookingUID)
	if err != nil {
		return model.Booking{}, err
	}
	if !existing.Active {
		return model.Booking{}, errs.ErrBookingCancelled
	}

	var updated model.Booking
	err = s.updateRetry.Do(ctx, func(ctx context.Context) error {
		return s.repo.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
			locked, err := s.repo.FindForDateRangeWithLock(ctx, tx, existing.CampsiteID, req.StartDate, req.EndDate)
			if err != nil {
				return err
			}
			others := locked[:0:0]
			for _, b := range locked {
				if b.BookingUID != req.BookingUID {
					others = append(others, b)
				}
			}
			if err := ensureAvailable(req.StartDate, req.EndDate, others); err != nil {
				return err
			}
			updated, err = s.repo.Update(ctx, tx, model.Booking{
				BookingUID: req.BookingUID,
				CampsiteID: existing.CampsiteID,
				Email:      req.Email,
				FullName:   req.FullName,
				StartDate:  req.StartDate,
				EndDate:    req.EndDate,
				Active:     true,
				Version:    req.Version,
			})
			return err
		})
	}, errs.Retryable)
	if err != nil {
		return model.Booking{}, err
	}
	return updated, nil
}

// CancelBooking deactivates the booking. Cancelling an already cancelled
// booking is a no-op and still reports true.
func (s *Service) CancelBooking(ctx context.Context, bookingUID string) (bool, error) {
	if _, err := s.repo.FindByUID(ctx, bookingUID); err != nil {
		return false, err
	}
	if err := s.repo.Cancel(ctx, bookingUID); err != nil {
		return false, err
	}
	s.log.Info("booking cancelled", zap.String("bookingUid", bookingUID))
	return true, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingUID string) (model.Booking, error) {
	return s.repo.FindByUID(ctx, bookingUID)
}

// FindVacantDates reports the days of the closed range [start, end] not taken
// by any active booking of the campsite. Read-only, no locks: the result may
// be stale by the time the caller books.
func (s *Service) FindVacantDates(ctx context.Context, campsiteID int, start, end model.Date) ([]model.Date, error) {
	today := s.today()
	if !start.After(today) || !end.After(today) {
		return nil, errors.Wrap(errs.ErrValidation, "dates must be in the future")
	}
	if end.Before(start) {
		return nil, errors.Wrap(errs.ErrValidation, "end date must not precede start date")
	}

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		_, err := s.repo.GetCampsite(ctx, campsiteID)
		return errors.WithMessage(err, "campsite")
	})
	var bookings []model.Booking
	gg.Go(func() error {
		var err error
		bookings, err = s.repo.FindForDateRange(ctx, campsiteID, start, end)
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	return model.VacantDates(start, end, bookings), nil
}

func (s *Service) ListCampsites(ctx context.Context) ([]model.Campsite, error) {
	return s.repo.ListCampsites(ctx)
}

// validateDates re-checks the booking rules even though the HTTP layer
// validates the DTO: the engine must not rely on its callers.
func (s *Service) validateDates(start, end model.Date) error {
	if start.IsZero() || end.IsZero() {
		return errors.Wrap(errs.ErrValidation, "start and end dates are required")
	}
	if !start.Before(end) {
		return errors.Wrap(errs.ErrValidation, "start date must be before end date")
	}
	if start.DaysUntil(end) > s.cfg.MaxStayDays {
		return errors.Wrapf(errs.ErrValidation, "stay cannot be longer than %d days", s.cfg.MaxStayDays)
	}
	today := s.today()
	if !start.After(today) {
		return errors.Wrap(errs.ErrValidation, "start date must be in the future")
	}
	if start.After(today.AddMonths(s.cfg.WindowMonths)) {
		return errors.Wrapf(errs.ErrValidation, "start date must be within %d month(s)", s.cfg.WindowMonths)
	}
	return nil
}

// ensureAvailable verifies the candidate's occupied days [start, end) are all
// vacant given the competing bookings.
func ensureAvailable(start, end model.Date, others []model.Booking) error {
	vacant := model.VacantDates(start, end, others)
	free := make(map[string]struct{}, len(vacant))
	for _, d := range vacant {
		free[d.Format(time.DateOnly)] = struct{}{}
	}
	for day := start; day.Before(end); day = day.AddDays(1) {
		if _, ok := free[day.Format(time.DateOnly)]; !ok {
			return errors.Wrapf(errs.ErrDatesNotAvailable, "from %s to %s",
				start.Format(time.DateOnly), end.Format(time.DateOnly))
		}
	}
	return nil
}
