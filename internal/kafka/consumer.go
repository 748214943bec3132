package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"delivery_service/internal/assignment"
	"delivery_service/internal/config"
	"delivery_service/internal/metrics"
	"delivery_service/internal/model"
	"delivery_service/internal/validator"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// reader абстрагирует kafka.Reader для тестов.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// writer абстрагирует kafka.Writer для тестов.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает чекаут-события из Kafka и назначает заказы компаниям.
type Consumer struct {
	reader     reader
	dlqWriter  writer // Продюсер для отправки "битых" событий в DLQ
	assigner   *assignment.Assigner
	tracer     trace.Tracer // Для трассировки
	maxRetries int          // Количество попыток для временных ошибок БД
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig, assigner *assignment.Assigner) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.CheckoutTopic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты будут выполняться вручную после успешной обработки.
	})

	// Продюсер для DLQ
	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Consumer{
		reader:     r,
		dlqWriter:  dlqWriter,
		assigner:   assigner,
		tracer:     otel.Tracer("kafka-consumer"),
		maxRetries: 3, // 3 попытки на сохранение в БД
	}
}

// Run запускает цикл чтения сообщений из Kafka.
func (c *Consumer) Run(ctx context.Context) {
	log.Println("Kafka-консюмер чекаут-событий запущен...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("Kafka-консюмер останавливается.")
			return
		default:
			// FetchMessage используется для ручного контроля коммитов
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
				continue
			}

			procErr := c.processMessage(ctx, msg)

			if procErr != nil {
				// Ошибка = нужна повторная обработка.
				// Мы НЕ коммитим сообщение, Kafka доставит его повторно.
				log.Printf("Ошибка обработки события (key: %s): %v. Не коммитим, ждем retry.", string(msg.Key), procErr)
			} else {
				// nil = обработка успешна (в т.ч. уход в DLQ).
				if err := c.reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("Ошибка коммита сообщения: %v", err)
				}
			}
		}
	}
}

// processMessage выполняет десериализацию, валидацию и назначение заказа.
// Возвращает nil, если обработка успешна или событие ушло в DLQ (ретрай не нужен).
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var event model.CheckoutEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("Невалидное JSON-событие, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil // Коммитим (не ретраим "битый" JSON)
	}

	// Валидация данных
	if err := validator.ValidateStruct(&event); err != nil {
		log.Printf("Ошибка валидации события заказа %d, отправка в DLQ: %v", event.OrderID, err)
		c.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil // Коммитим (не ретраим невалидные данные)
	}

	// Назначение с внутренним Retry-циклом для временных ошибок БД
	var assignErr error
	for i := 0; i < c.maxRetries; i++ {
		_, assignErr = c.assigner.AssignOrder(ctx, &event)
		if assignErr == nil {
			break // Успешно
		}
		if errors.Is(assignErr, assignment.ErrNoCompany) {
			// Отсутствие подходящей компании ретраем не лечится.
			break
		}
		log.Printf("Ошибка назначения заказа %d (попытка %d/%d): %v", event.OrderID, i+1, c.maxRetries, assignErr)
		// Простой backoff, прерываемый остановкой сервиса.
		select {
		case <-ctx.Done():
			// Не коммитим: событие будет передоставлено после рестарта.
			return ctx.Err()
		case <-time.After(time.Second * time.Duration(i+1)):
		}
	}

	if assignErr != nil {
		log.Printf("Не удалось назначить заказ %d, отправка в DLQ.", event.OrderID)
		c.sendToDLQ(ctx, msg, "assignment_error", assignErr)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_db_error").Inc()
		return nil // Коммитим (исчерпали попытки)
	}

	log.Printf("Заказ %d успешно назначен компании.", event.OrderID)
	metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()

	return nil
}

// sendToDLQ отправляет "битое" событие в DLQ топик.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить событие %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
	} else {
		log.Printf("Событие %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
