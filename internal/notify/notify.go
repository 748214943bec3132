package notify

import (
	"context"
	"encoding/json"
	"log"

	"delivery_service/internal/config"

	"github.com/segmentio/kafka-go"
)

// Message - письмо для почтового воркера.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Notifier отправляет уведомления по принципу fire-and-forget:
// ошибка отправки логируется и не возвращается вызывающему.
type Notifier interface {
	Send(ctx context.Context, msg Message)
}

// kafkaNotifier публикует письма в топик уведомлений,
// откуда их забирает почтовый воркер хост-системы.
type kafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier создает нотификатор поверх Kafka-топика уведомлений.
func NewKafkaNotifier(cfg config.KafkaConfig) Notifier {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.NotificationsTopic,
		Balancer: &kafka.LeastBytes{},
	}
	return &kafkaNotifier{writer: writer}
}

func (n *kafkaNotifier) Send(ctx context.Context, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Ошибка сериализации уведомления: %v", err)
		return
	}

	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To),
		Value: payload,
	}); err != nil {
		// Уведомления не критичны: ошибку не ретраим и не поднимаем выше.
		log.Printf("Ошибка отправки уведомления для %s: %v", msg.To, err)
	}
}

// Nop - заглушка для тестов и окружений без Kafka.
type Nop struct{}

func (Nop) Send(context.Context, Message) {}
