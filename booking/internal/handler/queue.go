package handler

import (
	"encoding/json"
	"time"

	"github.com/campsite/booking-service/booking/internal/model"

	"github.com/IBM/sarama"
)

const (
	EventBookingCreated   = "BookingCreated"
	EventBookingCancelled = "BookingCancelled"
)

type BookingEvent struct {
	Type       string      `json:"type"`
	BookingUID string      `json:"bookingUid"`
	CampsiteID int         `json:"campsiteId,omitempty"`
	StartDate  *model.Date `json:"startDate,omitempty"`
	EndDate    *model.Date `json:"endDate,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
}

// NewBookingEvent carries the booking dates only when they are known: a
// cancellation is built from the uid alone.
func NewBookingEvent(eventType string, b model.Booking) BookingEvent {
	ev := BookingEvent{
		Type:       eventType,
		BookingUID: b.BookingUID,
		CampsiteID: b.CampsiteID,
		OccurredAt: time.Now().UTC(),
	}
	if !b.StartDate.IsZero() {
		start, end := b.StartDate, b.EndDate
		ev.StartDate, ev.EndDate = &start, &end
	}
	return ev
}

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
