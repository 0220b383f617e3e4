package handler

import (
	"context"

	"github.com/campsite/booking-service/booking/internal/model"
	"github.com/campsite/booking-service/booking/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error)
	UpdateBooking(ctx context.Context, req model.UpdateBookingRequest) (model.Booking, error)
	CancelBooking(ctx context.Context, bookingUID string) (bool, error)
	GetBooking(ctx context.Context, bookingUID string) (model.Booking, error)
	FindVacantDates(ctx context.Context, campsiteID int, start, end model.Date) ([]model.Date, error)
	ListCampsites(ctx context.Context) ([]model.Campsite, error)
}

var _ BookingService = (*service.Service)(nil)
