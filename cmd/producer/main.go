package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery_service/internal/config"
	"delivery_service/internal/generator"

	"github.com/segmentio/kafka-go"
)

// Producer отвечает за генерацию и отправку чекаут-событий в Kafka.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer создает и настраивает новый экземпляр продюсера.
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: writer}
}

// Run запускает бесконечный цикл отправки событий.
func (p *Producer) Run(ctx context.Context, interval time.Duration) {
	log.Println("Продюсер запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Продюсер останавливается.")
			return
		case <-ticker.C:
			event := generator.NewCheckoutEvent()
			eventBytes, err := json.Marshal(event)
			if err != nil {
				log.Printf("Ошибка сериализации события: %v", err)
				continue
			}

			err = p.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(fmt.Sprintf("%d", event.OrderID)),
				Value: eventBytes,
			})

			if err != nil {
				log.Printf("Ошибка отправки сообщения: %v", err)
			} else {
				fmt.Printf("Отправлено чекаут-событие заказа %d\n", event.OrderID)
			}
		}
	}
}

func (p *Producer) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer: %v", err)
	}
}

func main() {
	cfg := config.Get()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	producer := NewProducer(cfg.Kafka.Brokers, cfg.Kafka.CheckoutTopic)
	defer producer.Close()

	producer.Run(ctx, 2*time.Second)
}
