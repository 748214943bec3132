package payout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"delivery_service/internal/database"
	"delivery_service/internal/metrics"
	"delivery_service/internal/notify"
)

var (
	// ErrNothingToPay возвращается, когда после фильтрации не осталось
	// ни одного pending-заработка запрошенной компании.
	ErrNothingToPay = errors.New("нет заработков, доступных для выплаты")
	// ErrUnknownMethod возвращается для неподдерживаемого метода выплаты.
	ErrUnknownMethod = errors.New("неизвестный метод выплаты")
)

// Method - способ проведения выплаты. Реальных платежных интеграций нет:
// каждый метод логирует попытку и отвечает успехом.
type Method interface {
	Dispatch(companyName string, amount float64, methodData map[string]string) error
	Name() string
}

type bankTransfer struct{}

func (bankTransfer) Name() string { return "bank_transfer" }

func (bankTransfer) Dispatch(companyName string, amount float64, methodData map[string]string) error {
	log.Printf("Банковский перевод для %s: $%.2f на счет %s", companyName, amount, methodData["account_number"])
	return nil
}

type paypal struct{}

func (paypal) Name() string { return "paypal" }

func (paypal) Dispatch(companyName string, amount float64, methodData map[string]string) error {
	log.Printf("PayPal-выплата для %s: $%.2f на %s", companyName, amount, methodData["paypal_email"])
	return nil
}

type manual struct{}

func (manual) Name() string { return "manual" }

func (manual) Dispatch(companyName string, amount float64, methodData map[string]string) error {
	log.Printf("Ручная выплата для %s: $%.2f - %s", companyName, amount, methodData["notes"])
	return nil
}

// Ledger проводит выплаты по pending-заработкам компании.
type Ledger struct {
	storage  database.Storage
	notifier notify.Notifier
	methods  map[string]Method
}

// NewLedger создает Ledger со стандартным набором методов выплат.
func NewLedger(storage database.Storage, notifier notify.Notifier) *Ledger {
	methods := map[string]Method{}
	for _, m := range []Method{bankTransfer{}, paypal{}, manual{}} {
		methods[m.Name()] = m
	}
	return &Ledger{storage: storage, notifier: notifier, methods: methods}
}

// Methods возвращает список поддерживаемых методов выплат.
func (l *Ledger) Methods() []string {
	names := make([]string, 0, len(l.methods))
	for name := range l.methods {
		names = append(names, name)
	}
	return names
}

// ProcessPayout проводит выплату по заработкам компании.
// Запрошенные id фильтруются до принадлежащих компании pending-строк;
// несовпавшие id молча отбрасываются. Успех метода помечает все
// отобранные заработки как paid с общим paid_at; ошибка метода
// оставляет их нетронутыми. Возвращает выплаченную сумму.
func (l *Ledger) ProcessPayout(ctx context.Context, companyID int64, earningIDs []int64, method string, methodData map[string]string) (float64, error) {
	handler, ok := l.methods[method]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	earnings, err := l.storage.PendingEarningsByIDs(ctx, companyID, earningIDs)
	if err != nil {
		return 0, err
	}
	if len(earnings) == 0 {
		return 0, ErrNothingToPay
	}

	var total float64
	ids := make([]int64, 0, len(earnings))
	for _, e := range earnings {
		total += e.NetAmount
		ids = append(ids, e.ID)
	}

	company, err := l.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return 0, err
	}

	if err := handler.Dispatch(company.CompanyName, total, methodData); err != nil {
		return 0, fmt.Errorf("метод выплаты %s завершился ошибкой: %w", method, err)
	}

	if err := l.storage.MarkEarningsPaid(ctx, ids, time.Now().UTC()); err != nil {
		return 0, err
	}
	metrics.PayoutsProcessed.WithLabelValues(method).Inc()

	l.notifier.Send(ctx, notify.Message{
		To:      company.Email,
		Subject: "Payout Processed",
		Body:    fmt.Sprintf("Your payout of $%.2f has been processed via %s.", total, method),
	})

	return total, nil
}
