package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campsite/booking-service/booking/internal/errs"
	"github.com/campsite/booking-service/booking/internal/handler"
	service_mocks "github.com/campsite/booking-service/booking/internal/handler/mocks"
	"github.com/campsite/booking-service/booking/internal/model"
	"github.com/campsite/booking-service/pkg/validate"

	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService, p *saramamocks.SyncProducer)

	booking := func(t *testing.T) model.Booking {
		return model.Booking{
			BookingUID: "3572bc47-0ed5-4a91-936b-f0b8b5f3f049",
			CampsiteID: 1,
			Email:      "john.smith@example.com",
			FullName:   "John Smith",
			StartDate:  mustDate(t, "2025-07-01"),
			EndDate:    mustDate(t, "2025-07-03"),
			Active:     true,
			Version:    0,
		}
	}

	const body = `{"campsiteId":1,"email":"john.smith@example.com","fullName":"John Smith","startDate":"2025-07-01","endDate":"2025-07-03"}`

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: body,
			mockBehavior: func(r *service_mocks.MockBookingService, p *saramamocks.SyncProducer) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(booking(t), nil)
				p.ExpectSendMessageAndSucceed()
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookingUid":"3572bc47-0ed5-4a91-936b-f0b8b5f3f049","campsiteId":1,"email":"john.smith@example.com","fullName":"John Smith","startDate":"2025-07-01","endDate":"2025-07-03","active":true,"version":0}`,
			},
		},
		{
			name:         "err. invalid email",
			body:         `{"campsiteId":1,"email":"not-an-email","fullName":"John Smith","startDate":"2025-07-01","endDate":"2025-07-03"}`,
			mockBehavior: func(r *service_mocks.MockBookingService, p *saramamocks.SyncProducer) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. validation from engine",
			body: body,
			mockBehavior: func(r *service_mocks.MockBookingService, p *saramamocks.SyncProducer) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.Wrap(errs.ErrValidation, "stay cannot be longer than 3 days"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. dates not available",
			body: body,
			mockBehavior: func(r *service_mocks.MockBookingService, p *saramamocks.SyncProducer) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrDatesNotAvailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
			},
		},
		{
			name: "err. lock timeout",
			body: body,
			mockBehavior: func(r *service_mocks.MockBookingService, p *saramamocks.SyncProducer) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errs.ErrLockTimeout)
			},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			producer := saramamocks.NewSyncProducer(t, nil)
			tt.mockBehavior(svc, producer)

			log := zap.NewExample().Named("test")
			h := handler.New(svc, producer, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/bookings", h.CreateBooking)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetBooking(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	var tests = []struct {
		name         string
		bookingUid   string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:       "ok",
			bookingUid: "3572bc47-0ed5-4a91-936b-f0b8b5f3f049",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					GetBooking(gomock.Any(), "3572bc47-0ed5-4a91-936b-f0b8b5f3f049").
					Return(model.Booking{
						BookingUID: "3572bc47-0ed5-4a91-936b-f0b8b5f3f049",
						CampsiteID: 1,
						Email:      "john.smith@example.com",
						FullName:   "John Smith",
						StartDate:  mustDate(t, "2025-07-01"),
						EndDate:    mustDate(t, "2025-07-03"),
						Active:     true,
						Version:    2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookingUid":"3572bc47-0ed5-4a91-936b-f0b8b5f3f049","campsiteId":1,"email":"john.smith@example.com","fullName":"John Smith","startDate":"2025-07-01","endDate":"2025-07-03","active":true,"version":2}`,
			},
		},
		{
			name:       "err. not found",
			bookingUid: "b-404",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					GetBooking(gomock.Any(), "b-404").
					Return(model.Booking{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			tt.mockBehavior(svc)

			h := handler.New(svc, saramamocks.NewSyncProducer(t, nil), zap.NewExample().Named("test"))

			e := echo.New()
			e.GET("/bookings/:bookingUid", h.GetBooking)

			r := httptest.NewRequest(http.MethodGet, "/bookings/"+tt.bookingUid, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBooking(t *testing.T) {
	t.Parallel()

	const body = `{"email":"john.smith@example.com","fullName":"John Smith","startDate":"2025-07-01","endDate":"2025-07-04","active":true,"version":0}`

	t.Run("err. stale version maps to conflict", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockBookingService(c)
		svc.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, errs.ErrStaleVersion)

		h := handler.New(svc, saramamocks.NewSyncProducer(t, nil), zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.PUT("/bookings/:bookingUid", h.UpdateBooking)

		r := httptest.NewRequest(http.MethodPut, "/bookings/3572bc47-0ed5-4a91-936b-f0b8b5f3f049", strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("err. cancelled booking maps to conflict", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockBookingService(c)
		svc.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, errs.ErrBookingCancelled)

		h := handler.New(svc, saramamocks.NewSyncProducer(t, nil), zap.NewExample().Named("test"))

		e := echo.New()
		e.Validator = validate.NewCustomValidator()
		e.PUT("/bookings/:bookingUid", h.UpdateBooking)

		r := httptest.NewRequest(http.MethodPut, "/bookings/3572bc47-0ed5-4a91-936b-f0b8b5f3f049", strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	svc.EXPECT().
		CancelBooking(gomock.Any(), "3572bc47-0ed5-4a91-936b-f0b8b5f3f049").
		Return(true, nil)
	producer := saramamocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()

	h := handler.New(svc, producer, zap.NewExample().Named("test"))

	e := echo.New()
	e.DELETE("/bookings/:bookingUid", h.CancelBooking)

	r := httptest.NewRequest(http.MethodDelete, "/bookings/3572bc47-0ed5-4a91-936b-f0b8b5f3f049", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"cancelled":true}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_FindVacantDates(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockBookingService(c)
		svc.EXPECT().
			FindVacantDates(gomock.Any(), 1, mustDate(t, "2025-07-01"), mustDate(t, "2025-07-03")).
			Return([]model.Date{mustDate(t, "2025-07-02"), mustDate(t, "2025-07-03")}, nil)

		h := handler.New(svc, saramamocks.NewSyncProducer(t, nil), zap.NewExample().Named("test"))

		e := echo.New()
		e.GET("/campsites/:campsiteId/vacant-dates", h.FindVacantDates)

		r := httptest.NewRequest(http.MethodGet, "/campsites/1/vacant-dates?start_date=2025-07-01&end_date=2025-07-03", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `["2025-07-02","2025-07-03"]`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. malformed dates", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service_mocks.NewMockBookingService(c)

		h := handler.New(svc, saramamocks.NewSyncProducer(t, nil), zap.NewExample().Named("test"))

		e := echo.New()
		e.GET("/campsites/:campsiteId/vacant-dates", h.FindVacantDates)

		r := httptest.NewRequest(http.MethodGet, "/campsites/1/vacant-dates?start_date=bad&end_date=2025-07-03", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
