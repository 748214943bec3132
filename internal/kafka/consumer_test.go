package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"delivery_service/internal/assignment"
	cachemocks "delivery_service/internal/cache/mocks"
	"delivery_service/internal/config"
	"delivery_service/internal/database/mocks"
	"delivery_service/internal/matching"
	"delivery_service/internal/model"
	"delivery_service/internal/notify"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/mock/gomock"
)

// fakeReader отдает заранее заданные сообщения и фиксирует коммиты.
type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

// fakeWriter собирает сообщения, ушедшие в DLQ.
type fakeWriter struct {
	written []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newTestConsumer(t *testing.T) (*Consumer, *fakeReader, *fakeWriter, *mocks.MockStorage) {
	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	zoneCache := cachemocks.NewMockCache(ctrl)
	cfg := config.DeliveryConfig{Enabled: true, CommissionRate: 5}
	assigner := assignment.NewAssigner(storage, matching.NewQuoter(storage, zoneCache, cfg), notify.Nop{}, cfg)

	r := &fakeReader{}
	w := &fakeWriter{}
	c := &Consumer{
		reader:     r,
		dlqWriter:  w,
		assigner:   assigner,
		tracer:     otel.Tracer("kafka-consumer-test"),
		maxRetries: 1,
	}
	return c, r, w, storage
}

func validEvent() model.CheckoutEvent {
	return model.CheckoutEvent{
		OrderID:           42,
		VendorID:          9,
		CustomerID:        5,
		CustomerEmail:     "buyer@example.com",
		Subtotal:          90,
		ShippingCost:      10,
		DeliveryCompanyID: 3,
		PickupAddress:     "Warehouse 1",
		DeliveryAddress:   model.Address{Country: "US", City: "New York"},
		CreatedAt:         time.Now(),
	}
}

func TestProcessMessage_Success(t *testing.T) {
	c, _, w, storage := newTestConsumer(t)
	ctx := context.Background()

	storage.EXPECT().GetCompanyByID(gomock.Any(), gomock.Any()).Return(&model.Company{ID: 3, Email: "c@example.com"}, nil)
	storage.EXPECT().CreateDeliveryOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	payload, err := json.Marshal(validEvent())
	require.NoError(t, err)

	procErr := c.processMessage(ctx, kafka.Message{Key: []byte("42"), Value: payload})
	require.NoError(t, procErr)
	assert.Empty(t, w.written)
}

func TestProcessMessage_BadJSONGoesToDLQ(t *testing.T) {
	c, _, w, _ := newTestConsumer(t)

	procErr := c.processMessage(context.Background(), kafka.Message{
		Topic: "checkout_events",
		Key:   []byte("bad"),
		Value: []byte("{not json"),
	})

	// nil = сообщение закоммитится, ретрай не нужен
	require.NoError(t, procErr)
	require.Len(t, w.written, 1)
	assert.Equal(t, []byte("bad"), w.written[0].Key)
	assertHeader(t, w.written[0], "X-Error-Reason", "json_unmarshal_error")
	assertHeader(t, w.written[0], "X-Original-Topic", "checkout_events")
}

func TestProcessMessage_ValidationFailureGoesToDLQ(t *testing.T) {
	c, _, w, _ := newTestConsumer(t)

	event := validEvent()
	event.CustomerEmail = "not-an-email"
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	procErr := c.processMessage(context.Background(), kafka.Message{Key: []byte("42"), Value: payload})
	require.NoError(t, procErr)
	require.Len(t, w.written, 1)
	assertHeader(t, w.written[0], "X-Error-Reason", "validation_error")
}

func TestProcessMessage_NoCompanyNotRetried(t *testing.T) {
	c, _, w, storage := newTestConsumer(t)
	ctx := context.Background()

	// Автоподбор (company_id = 0) не находит ни одной компании:
	// ровно один проход, без ретраев, событие уходит в DLQ.
	storage.EXPECT().ListActiveCompanies(gomock.Any()).Return([]model.Company{}, nil).Times(1)

	event := validEvent()
	event.DeliveryCompanyID = 0
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	procErr := c.processMessage(ctx, kafka.Message{Key: []byte("42"), Value: payload})
	require.NoError(t, procErr)
	require.Len(t, w.written, 1)
	assertHeader(t, w.written[0], "X-Error-Reason", "assignment_error")
}

func TestProcessMessage_DBErrorExhaustsRetries(t *testing.T) {
	c, _, w, storage := newTestConsumer(t)
	ctx := context.Background()

	storage.EXPECT().GetCompanyByID(gomock.Any(), gomock.Any()).Return(&model.Company{ID: 3}, nil)
	storage.EXPECT().CreateDeliveryOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	payload, err := json.Marshal(validEvent())
	require.NoError(t, err)

	procErr := c.processMessage(ctx, kafka.Message{Key: []byte("42"), Value: payload})
	require.NoError(t, procErr)
	require.Len(t, w.written, 1)
	assertHeader(t, w.written[0], "X-Error-Reason", "assignment_error")
}

func TestProcessMessage_BackoffInterruptedByShutdown(t *testing.T) {
	c, _, w, storage := newTestConsumer(t)
	c.maxRetries = 3

	storage.EXPECT().GetCompanyByID(gomock.Any(), gomock.Any()).Return(&model.Company{ID: 3}, nil).AnyTimes()
	storage.EXPECT().CreateDeliveryOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down")).AnyTimes()

	payload, err := json.Marshal(validEvent())
	require.NoError(t, err)

	// Остановка сервиса во время паузы между ретраями: processMessage
	// возвращается сразу, не досыпая backoff, и не коммитит сообщение.
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	procErr := c.processMessage(ctx, kafka.Message{Key: []byte("42"), Value: payload})

	require.ErrorIs(t, procErr, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
	assert.Empty(t, w.written)
}

func TestRun_CommitsProcessedMessages(t *testing.T) {
	c, r, _, _ := newTestConsumer(t)

	// "Битый" JSON уходит в DLQ и коммитится.
	r.messages = []kafka.Message{{Key: []byte("bad"), Value: []byte("oops")}}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	c.Run(ctx)

	require.Len(t, r.committed, 1)
	assert.Equal(t, []byte("bad"), r.committed[0].Key)
}

func assertHeader(t *testing.T, msg kafka.Message, key, want string) {
	t.Helper()
	for _, h := range msg.Headers {
		if h.Key == key {
			assert.Equal(t, want, string(h.Value))
			return
		}
	}
	t.Fatalf("заголовок %s не найден", key)
}
