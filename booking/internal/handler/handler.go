package handler

import (
	"net/http"
	"strconv"

	"github.com/campsite/booking-service/booking/internal/errs"
	"github.com/campsite/booking-service/booking/internal/model"
	"github.com/campsite/booking-service/pkg/kafka"
	"github.com/campsite/booking-service/pkg/validate"
	_ "github.com/campsite/booking-service/swagger"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	bookingSvc BookingService
	enqueuer   Enqueuer
	log        *zap.Logger
}

func New(bookingSvc BookingService, producer sarama.SyncProducer, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		enqueuer:   NewEnqueuer(producer),
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.GET("/campsites", h.ListCampsites)
	api.GET("/campsites/:campsiteId/vacant-dates", h.FindVacantDates)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:bookingUid", h.GetBooking)
	api.PUT("/bookings/:bookingUid", h.UpdateBooking)
	api.DELETE("/bookings/:bookingUid", h.CancelBooking)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	booking, err := h.bookingSvc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	h.enqueue(EventBookingCreated, booking)
	return c.JSON(http.StatusCreated, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	booking, err := h.bookingSvc.GetBooking(c.Request().Context(), c.Param("bookingUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) UpdateBooking(c echo.Context) error {
	var req model.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.BookingUID = c.Param("bookingUid")
	if err := c.Validate(req); err != nil {
		return err
	}

	booking, err := h.bookingSvc.UpdateBooking(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	bookingUID := c.Param("bookingUid")
	cancelled, err := h.bookingSvc.CancelBooking(c.Request().Context(), bookingUID)
	if err != nil {
		return httpError(err)
	}
	h.enqueue(EventBookingCancelled, model.Booking{BookingUID: bookingUID})
	return c.JSON(http.StatusOK, model.CancelBookingResponse{Cancelled: cancelled})
}

func (h *Handler) FindVacantDates(c echo.Context) error {
	campsiteID, err := strconv.Atoi(c.Param("campsiteId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid campsiteId")
	}
	start, err := model.ParseDate(c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}
	end, err := model.ParseDate(c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
	}

	dates, err := h.bookingSvc.FindVacantDates(c.Request().Context(), campsiteID, start, end)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dates)
}

func (h *Handler) ListCampsites(c echo.Context) error {
	campsites, err := h.bookingSvc.ListCampsites(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, campsites)
}

func (h *Handler) enqueue(event string, booking model.Booking) {
	if err := h.enqueuer.Enqueue(kafka.BookingTopic, NewBookingEvent(event, booking)); err != nil {
		h.log.Warn("enqueue", zap.String("event", event), zap.Error(err))
	}
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDatesNotAvailable),
		errors.Is(err, errs.ErrStaleVersion),
		errors.Is(err, errs.ErrBookingCancelled):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrLockTimeout):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
