package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campsite/booking-service/booking/internal/errs"
	"github.com/campsite/booking-service/booking/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
	FindByUID(ctx context.Context, bookingUID string) (model.Booking, error)
	FindForDateRange(ctx context.Context, campsiteID int, start, end model.Date) ([]model.Booking, error)
	FindForDateRangeWithLock(ctx context.Context, tx *sqlx.Tx, campsiteID int, start, end model.Date) ([]model.Booking, error)
	Insert(ctx context.Context, tx *sqlx.Tx, b model.Booking) (model.Booking, error)
	Update(ctx context.Context, tx *sqlx.Tx, b model.Booking) (model.Booking, error)
	Cancel(ctx context.Context, bookingUID string) error
	GetCampsite(ctx context.Context, id int) (model.Campsite, error)
	ListCampsites(ctx context.Context) ([]model.Campsite, error)
}

// Config bounds how long queries wait on row locks held by competing
// transactions. The pessimistic path gets its own, longer bound.
type Config struct {
	SelectTimeout          time.Duration
	SelectForUpdateTimeout time.Duration
}

type repository struct {
	db   *sqlx.DB
	lock LockTimeout
	cfg  Config
	log  *zap.Logger
}

func NewRepository(db *sqlx.DB, lock LockTimeout, cfg Config, log *zap.Logger) (*repository, error) {
	return &repository{
		db:   db,
		lock: lock,
		cfg:  cfg,
		log:  log.Named("repo"),
	}, nil
}

const (
	bookingTableName  = `booking`
	campsiteTableName = `campsite`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookingColumns = []string{
	"id", "booking_uid", "campsite_id", "email", "full_name",
	"start_date", "end_date", "active", "version", "created_at", "updated_at",
}

// WithinTx runs fn inside a transaction, rolling back on any error.
func (r *repository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

func (r *repository) FindByUID(ctx context.Context, bookingUID string) (model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingTableName).
		Where(sq.Eq{"booking_uid": bookingUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// rangeQuery selects active bookings of a campsite whose half-open
// [start_date, end_date) intersects [start, end).
func rangeQuery(campsiteID int, start, end model.Date) sq.SelectBuilder {
	return qb.Select(bookingColumns...).
		From(bookingTableName).
		Where(sq.Eq{"campsite_id": campsiteID}).
		Where(sq.Eq{"active": true}).
		Where(sq.Lt{"start_date": end}).
		Where(sq.Gt{"end_date": start}).
		OrderBy("start_date")
}

func (r *repository) FindForDateRange(ctx context.Context, campsiteID int, start, end model.Date) ([]model.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.SelectTimeout)
	defer cancel()

	q, args, err := rangeQuery(campsiteID, start, end).ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// FindForDateRangeWithLock takes FOR UPDATE row locks on every matching
// booking, serializing concurrent writers for intersecting ranges of the same
// campsite until the enclosing transaction ends. A writer that cannot get the
// locks within the configured bound fails with errs.ErrLockTimeout.
func (r *repository) FindForDateRangeWithLock(ctx context.Context, tx *sqlx.Tx, campsiteID int, start, end model.Date) ([]model.Booking, error) {
	if err := r.lock.Set(ctx, tx, r.cfg.SelectForUpdateTimeout); err != nil {
		return nil, err
	}
	q, args, err := rangeQuery(campsiteID, start, end).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := tx.SelectContext(ctx, &items, q, args...); err != nil {
		r.log.Warn("FindForDateRangeWithLock", zap.Int("campsiteID", campsiteID), zap.Error(err))
		return nil, classify(err)
	}
	return items, nil
}

func (r *repository) Insert(ctx context.Context, tx *sqlx.Tx, b model.Booking) (model.Booking, error) {
	q, args, err := qb.Insert(bookingTableName).
		Columns("booking_uid", "campsite_id", "email", "full_name", "start_date", "end_date", "active", "version").
		Values(b.BookingUID, b.CampsiteID, b.Email, b.FullName, b.StartDate, b.EndDate, b.Active, b.Version).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var res model.Booking
	if err := tx.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("Insert", zap.String("q", q), zap.Any("args", args))
		return model.Booking{}, classify(err)
	}
	return res, nil
}

// Update persists new dates and holder info guarded by the optimistic version
// check: the row is touched only if it is still active and its version still
// equals the one the caller read, and the version advances by one in the same
// statement. The active predicate matters because Cancel does not bump the
// version: a cancel committing after the caller's snapshot read would
// otherwise pass the version check and resurrect dates on a cancelled row.
func (r *repository) Update(ctx context.Context, tx *sqlx.Tx, b model.Booking) (model.Booking, error) {
	q := `update booking
	set email = $1, full_name = $2, start_date = $3, end_date = $4,
	    version = version + 1, updated_at = now()
	where booking_uid = $5 and active and version = $6
	returning *`

	var res model.Booking
	err := tx.GetContext(ctx, &res, q, b.Email, b.FullName, b.StartDate, b.EndDate, b.BookingUID, b.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, r.updateConflict(ctx, tx, b.BookingUID)
		}
		return model.Booking{}, classify(err)
	}
	return res, nil
}

// updateConflict tells apart why a guarded update matched no row: the booking
// vanished, was cancelled, or moved past the expected version.
func (r *repository) updateConflict(ctx context.Context, tx *sqlx.Tx, bookingUID string) error {
	q, args, err := qb.Select("active").
		From(bookingTableName).
		Where(sq.Eq{"booking_uid": bookingUID}).
		ToSql()
	if err != nil {
		return err
	}
	var active bool
	if err := tx.GetContext(ctx, &active, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	if !active {
		return errs.ErrBookingCancelled
	}
	return errs.ErrStaleVersion
}

// Cancel deactivates the booking. Shrinking the active set cannot introduce
// an overlap, so no range lock and no version bump.
func (r *repository) Cancel(ctx context.Context, bookingUID string) error {
	q := `update booking set active = false, updated_at = now() where booking_uid = $1`
	res, err := r.db.ExecContext(ctx, q, bookingUID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetCampsite(ctx context.Context, id int) (model.Campsite, error) {
	q, args, err := qb.Select("id", "capacity", "restrooms", "drinking_water", "picnic_table", "fire_pit").
		From(campsiteTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Campsite{}, err
	}
	var cs model.Campsite
	if err := r.db.GetContext(ctx, &cs, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Campsite{}, errs.ErrNotFound
		}
		return model.Campsite{}, err
	}
	return cs, nil
}

func (r *repository) ListCampsites(ctx context.Context) ([]model.Campsite, error) {
	q, args, err := qb.Select("id", "capacity", "restrooms", "drinking_water", "picnic_table", "fire_pit").
		From(campsiteTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Campsite
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// classify maps engine lock-wait expiry (55P03) onto the retryable sentinel.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.LockNotAvailable {
		return errors.Wrap(errs.ErrLockTimeout, pgErr.Message)
	}
	return err
}
