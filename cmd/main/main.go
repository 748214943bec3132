package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"delivery_service/internal/api"
	"delivery_service/internal/assignment"
	"delivery_service/internal/cache"
	"delivery_service/internal/config"
	"delivery_service/internal/database"
	"delivery_service/internal/kafka"
	"delivery_service/internal/matching"
	"delivery_service/internal/metrics"
	"delivery_service/internal/notify"
	"delivery_service/internal/payout"
	"delivery_service/internal/tracing"
)

func main() {
	cfg := config.Get()

	// Инициализация трассировки и метрик
	shutdownTracer := tracing.InitTracerProvider("delivery-service")
	defer shutdownTracer()
	metrics.Init()

	// Инициализация хранилища
	storage, err := database.New(cfg.Postgres.URL, "./internal/database/migrations")
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	// Инициализация кэша активных зон
	zoneCache := cache.NewLRUCache(cfg.Cache.Size)
	if err := cache.WarmUp(context.Background(), storage, zoneCache); err != nil {
		log.Printf("Ошибка при прогреве кэша зон: %v", err)
	}

	// Сборка бизнес-слоя
	notifier := notify.NewKafkaNotifier(cfg.Kafka)
	quoter := matching.NewQuoter(storage, zoneCache, cfg.Delivery)
	assigner := assignment.NewAssigner(storage, quoter, notifier, cfg.Delivery)
	ledger := payout.NewLedger(storage, notifier)

	// Запуск Kafka Consumer чекаут-событий
	ctx, cancel := context.WithCancel(context.Background())
	consumer := kafka.NewConsumer(cfg.Kafka, assigner)
	go consumer.Run(ctx)

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, storage, zoneCache, quoter, assigner, ledger, notifier)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	cancel()
	log.Println("Сервис успешно остановлен.")
}
