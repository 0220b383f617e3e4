package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date without a time component. It marshals as
// "2006-01-02" on the wire and maps to a postgres date column.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now().UTC())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) AddMonths(n int) Date {
	return Date{Time: d.Time.AddDate(0, n, 0)}
}

// DaysUntil returns the number of whole days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time.Sub(d.Time) / (24 * time.Hour))
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %q", s)
	}
	t, err := time.Parse(time.DateOnly, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

type Booking struct {
	ID         int       `json:"-" db:"id"`
	BookingUID string    `json:"bookingUid" db:"booking_uid"`
	CampsiteID int       `json:"campsiteId" db:"campsite_id"`
	Email      string    `json:"email" db:"email"`
	FullName   string    `json:"fullName" db:"full_name"`
	StartDate  Date      `json:"startDate" db:"start_date"`
	EndDate    Date      `json:"endDate" db:"end_date"`
	Active     bool      `json:"active" db:"active"`
	Version    int64     `json:"version" db:"version"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
	UpdatedAt  time.Time `json:"-" db:"updated_at"`
}

type Campsite struct {
	ID            int  `json:"id" db:"id"`
	Capacity      int  `json:"capacity" db:"capacity"`
	Restrooms     bool `json:"restrooms" db:"restrooms"`
	DrinkingWater bool `json:"drinkingWater" db:"drinking_water"`
	PicnicTable   bool `json:"picnicTable" db:"picnic_table"`
	FirePit       bool `json:"firePit" db:"fire_pit"`
}

type CreateBookingRequest struct {
	CampsiteID int    `json:"campsiteId" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"fullName" validate:"required,max=100"`
	StartDate  Date   `json:"startDate" validate:"required"`
	EndDate    Date   `json:"endDate" validate:"required"`
}

type UpdateBookingRequest struct {
	BookingUID string `json:"-" validate:"required,uuid"`
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"fullName" validate:"required,max=100"`
	StartDate  Date   `json:"startDate" validate:"required"`
	EndDate    Date   `json:"endDate" validate:"required"`
	Active     bool   `json:"active"`
	Version    int64  `json:"version" validate:"min=0"`
}

type CancelBookingResponse struct {
	Cancelled bool `json:"cancelled"`
}
