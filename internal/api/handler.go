package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"delivery_service/internal/assignment"
	"delivery_service/internal/cache"
	"delivery_service/internal/database"
	"delivery_service/internal/matching"
	"delivery_service/internal/metrics"
	"delivery_service/internal/model"
	"delivery_service/internal/notify"
	"delivery_service/internal/payout"
	"delivery_service/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler обрабатывает HTTP-запросы сервиса доставки.
type Handler struct {
	storage  database.Storage
	cache    cache.Cache
	quoter   *matching.Quoter
	assigner *assignment.Assigner
	ledger   *payout.Ledger
	notifier notify.Notifier
}

// NewHandler создает новый экземпляр Handler.
func NewHandler(storage database.Storage, zoneCache cache.Cache, quoter *matching.Quoter, assigner *assignment.Assigner, ledger *payout.Ledger, notifier notify.Notifier) *Handler {
	return &Handler{
		storage:  storage,
		cache:    zoneCache,
		quoter:   quoter,
		assigner: assigner,
		ledger:   ledger,
		notifier: notifier,
	}
}

// RegisterCompany регистрирует новую курьерскую компанию (статус pending,
// активация - за администратором).
func (h *Handler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	handlerName := "RegisterCompany"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var company model.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	if err := validator.ValidateStruct(&company); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("ошибка валидации: %v", err), handlerName)
		return
	}

	if _, err := h.storage.CreateCompany(r.Context(), &company); err != nil {
		log.Printf("Ошибка регистрации компании: %v", err)
		respondWithError(w, http.StatusConflict, "не удалось зарегистрировать компанию", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, company)
}

// GetCompany возвращает компанию по id.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	handlerName := "GetCompany"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	company, err := h.storage.GetCompanyByID(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "компания не найдена", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, company)
}

// GetCompanyByUser возвращает компанию по user_id хост-системы.
func (h *Handler) GetCompanyByUser(w http.ResponseWriter, r *http.Request) {
	handlerName := "GetCompanyByUser"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	userID, ok := parseID(w, r, "userID", handlerName)
	if !ok {
		return
	}

	company, err := h.storage.GetCompanyByUserID(r.Context(), userID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "компания не найдена", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, company)
}

// DeleteCompany удаляет компанию вместе с ее зонами (каскад в БД).
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	handlerName := "DeleteCompany"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	if err := h.storage.DeleteCompany(r.Context(), id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось удалить компанию", handlerName)
		return
	}
	h.cache.Delete(r.Context(), cache.ZoneKey(id))

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "204").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// UpdateCompanyStatus переводит компанию в новый статус (модерация).
func (h *Handler) UpdateCompanyStatus(w http.ResponseWriter, r *http.Request) {
	handlerName := "UpdateCompanyStatus"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	var req struct {
		Status model.CompanyStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	if !model.ValidCompanyStatus(req.Status) {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("недопустимый статус: %s", req.Status), handlerName)
		return
	}

	if err := h.storage.UpdateCompanyStatus(r.Context(), id, req.Status); err != nil {
		respondWithError(w, http.StatusNotFound, "не удалось обновить статус компании", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": req.Status})
}

// ListZones возвращает все зоны компании (zone_name ASC).
func (h *Handler) ListZones(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListZones"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	zones, err := h.storage.ZonesByCompany(r.Context(), companyID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось получить зоны", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, zones)
}

// CreateZone добавляет компании новую зону доставки.
func (h *Handler) CreateZone(w http.ResponseWriter, r *http.Request) {
	handlerName := "CreateZone"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	var zone model.Zone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	zone.DeliveryCompanyID = companyID
	if zone.EstimatedDeliveryDays == 0 {
		zone.EstimatedDeliveryDays = 3
	}
	if err := validator.ValidateStruct(&zone); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("ошибка валидации: %v", err), handlerName)
		return
	}

	if _, err := h.storage.CreateZone(r.Context(), &zone); err != nil {
		log.Printf("Ошибка создания зоны: %v", err)
		respondWithError(w, http.StatusInternalServerError, "не удалось создать зону", handlerName)
		return
	}

	// Набор активных зон компании изменился
	h.cache.Delete(r.Context(), cache.ZoneKey(companyID))

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, zone)
}

// UpdateZone обновляет зону доставки.
func (h *Handler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	handlerName := "UpdateZone"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	zoneID, ok := parseID(w, r, "zoneID", handlerName)
	if !ok {
		return
	}

	existing, err := h.storage.GetZoneByID(r.Context(), zoneID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "зона не найдена", handlerName)
		return
	}

	var zone model.Zone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	zone.ID = zoneID
	zone.DeliveryCompanyID = existing.DeliveryCompanyID
	if zone.Status == "" {
		zone.Status = existing.Status
	}
	if err := validator.ValidateStruct(&zone); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("ошибка валидации: %v", err), handlerName)
		return
	}

	if err := h.storage.UpdateZone(r.Context(), &zone); err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось обновить зону", handlerName)
		return
	}

	h.cache.Delete(r.Context(), cache.ZoneKey(existing.DeliveryCompanyID))

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, zone)
}

// DeleteZone удаляет зону доставки.
func (h *Handler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	handlerName := "DeleteZone"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	zoneID, ok := parseID(w, r, "zoneID", handlerName)
	if !ok {
		return
	}

	existing, err := h.storage.GetZoneByID(r.Context(), zoneID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "зона не найдена", handlerName)
		return
	}

	if err := h.storage.DeleteZone(r.Context(), zoneID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось удалить зону", handlerName)
		return
	}

	h.cache.Delete(r.Context(), cache.ZoneKey(existing.DeliveryCompanyID))

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "204").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Quote рассчитывает ставки доставки для адреса на чекауте.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	handlerName := "Quote"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var req struct {
		Address  model.Address `json:"address"`
		Subtotal float64       `json:"subtotal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}

	quotes, err := h.quoter.Quote(r.Context(), req.Address, req.Subtotal)
	if err != nil {
		log.Printf("Ошибка расчета ставок: %v", err)
		respondWithError(w, http.StatusInternalServerError, "не удалось рассчитать ставки", handlerName)
		return
	}
	if quotes == nil {
		quotes = []model.ShippingQuote{}
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, quotes)
}

// AssignOrder назначает заказ хост-системы курьерской компании
// (синхронный путь; асинхронный - через Kafka-консюмер).
func (h *Handler) AssignOrder(w http.ResponseWriter, r *http.Request) {
	handlerName := "AssignOrder"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var event model.CheckoutEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	if err := validator.ValidateStruct(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("ошибка валидации: %v", err), handlerName)
		return
	}

	order, err := h.assigner.AssignOrder(r.Context(), &event)
	if err != nil {
		if errors.Is(err, assignment.ErrNoCompany) {
			respondWithError(w, http.StatusUnprocessableEntity, "нет компании, обслуживающей адрес", handlerName)
			return
		}
		log.Printf("Ошибка назначения заказа %d: %v", event.OrderID, err)
		respondWithError(w, http.StatusInternalServerError, "не удалось назначить заказ", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, order)
}

// GetOrder возвращает заказ доставки по внутреннему id.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	handlerName := "GetOrder"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, ok := parseID(w, r, "orderID", handlerName)
	if !ok {
		return
	}

	order, err := h.storage.GetDeliveryOrderByID(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "заказ доставки не найден", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus переводит заказ доставки в новый статус.
// Переход проверяется по машине состояний; даты pickup/delivery
// выставляются один раз. Покупатель уведомляется (fire-and-forget).
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	handlerName := "UpdateOrderStatus"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, ok := parseID(w, r, "orderID", handlerName)
	if !ok {
		return
	}

	var req struct {
		Status model.OrderStatus `json:"status"`
		Notes  string            `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	if !model.ValidOrderStatus(req.Status) {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("недопустимый статус: %s", req.Status), handlerName)
		return
	}

	order, err := h.storage.GetDeliveryOrderByID(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "заказ доставки не найден", handlerName)
		return
	}
	if !order.Status.CanTransitionTo(req.Status) {
		respondWithError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("недопустимый переход статуса: %s -> %s", order.Status, req.Status), handlerName)
		return
	}

	updated, err := h.storage.UpdateOrderStatus(r.Context(), id, req.Status, req.Notes)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось обновить статус заказа", handlerName)
		return
	}

	// Уведомление покупателя - best-effort
	if updated.CustomerEmail != "" {
		h.notifier.Send(r.Context(), notify.Message{
			To:      updated.CustomerEmail,
			Subject: fmt.Sprintf("Order Update - %d", updated.OrderID),
			Body:    fmt.Sprintf("Your order #%d has been %s.", updated.OrderID, model.StatusLabel(req.Status)),
		})
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, updated)
}

// ListCompanyOrders возвращает заказы компании, опционально по статусу.
func (h *Handler) ListCompanyOrders(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListCompanyOrders"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	status := model.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !model.ValidOrderStatus(status) {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("недопустимый статус: %s", status), handlerName)
		return
	}

	orders, err := h.storage.ListOrdersByCompany(r.Context(), companyID, status)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось получить заказы", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, orders)
}

// ListVendorOrders возвращает заказы доставки продавца.
func (h *Handler) ListVendorOrders(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListVendorOrders"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	vendorID, ok := parseID(w, r, "vendorID", handlerName)
	if !ok {
		return
	}

	orders, err := h.storage.ListOrdersByVendor(r.Context(), vendorID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось получить заказы продавца", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, orders)
}

// CancelHostOrder отменяет заказ доставки при отмене заказа в хост-системе.
// Невыплаченный заработок по заказу также переводится в cancelled.
func (h *Handler) CancelHostOrder(w http.ResponseWriter, r *http.Request) {
	handlerName := "CancelHostOrder"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	hostOrderID, ok := parseID(w, r, "orderID", handlerName)
	if !ok {
		return
	}

	cancelled, err := h.storage.CancelByOrderID(r.Context(), hostOrderID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "нет заказа доставки, доступного для отмены", handlerName)
		return
	}

	if cancelled.CustomerEmail != "" {
		h.notifier.Send(r.Context(), notify.Message{
			To:      cancelled.CustomerEmail,
			Subject: fmt.Sprintf("Order Update - %d", cancelled.OrderID),
			Body:    fmt.Sprintf("Your order #%d has been cancelled.", cancelled.OrderID),
		})
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, cancelled)
}

// ListEarnings возвращает заработки компании, опционально по статусу.
func (h *Handler) ListEarnings(w http.ResponseWriter, r *http.Request) {
	handlerName := "ListEarnings"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	status := model.EarningStatus(r.URL.Query().Get("status"))
	earnings, err := h.storage.EarningsByCompany(r.Context(), companyID, status)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось получить заработки", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, earnings)
}

// EarningsSummary возвращает сводку заработков компании.
func (h *Handler) EarningsSummary(w http.ResponseWriter, r *http.Request) {
	handlerName := "EarningsSummary"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	summary, err := h.storage.EarningsSummary(r.Context(), companyID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось получить сводку", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, summary)
}

// MonthlyEarnings возвращает помесячную разбивку заработков за год.
func (h *Handler) MonthlyEarnings(w http.ResponseWriter, r *http.Request) {
	handlerName := "MonthlyEarnings"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		year = time.Now().UTC().Year()
	}

	earnings, err := h.storage.MonthlyEarnings(r.Context(), companyID, year)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "не удалось получить помесячные заработки", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, earnings)
}

// ProcessPayout проводит выплату по выбранным заработкам компании.
func (h *Handler) ProcessPayout(w http.ResponseWriter, r *http.Request) {
	handlerName := "ProcessPayout"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	companyID, ok := parseID(w, r, "companyID", handlerName)
	if !ok {
		return
	}

	var req struct {
		EarningIDs []int64           `json:"earning_ids"`
		Method     string            `json:"method"`
		MethodData map[string]string `json:"method_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный JSON", handlerName)
		return
	}
	if len(req.EarningIDs) == 0 {
		respondWithError(w, http.StatusBadRequest, "не выбраны заработки для выплаты", handlerName)
		return
	}

	total, err := h.ledger.ProcessPayout(r.Context(), companyID, req.EarningIDs, req.Method, req.MethodData)
	if err != nil {
		switch {
		case errors.Is(err, payout.ErrUnknownMethod):
			respondWithError(w, http.StatusBadRequest, err.Error(), handlerName)
		case errors.Is(err, payout.ErrNothingToPay):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error(), handlerName)
		default:
			log.Printf("Ошибка проведения выплаты для компании %d: %v", companyID, err)
			respondWithError(w, http.StatusInternalServerError, "не удалось провести выплату", handlerName)
		}
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total_paid": total,
		"method":     req.Method,
	})
}

// parseID извлекает положительный числовой URL-параметр.
func parseID(w http.ResponseWriter, r *http.Request, param, handlerName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("некорректный параметр %s", param), handlerName)
		return 0, false
	}
	return id, true
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(code)).Inc()
	http.Error(w, message, code)
}
