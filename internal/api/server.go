package api

import (
	"fmt"
	"net/http"

	"delivery_service/internal/assignment"
	"delivery_service/internal/cache"
	"delivery_service/internal/database"
	"delivery_service/internal/matching"
	"delivery_service/internal/notify"
	"delivery_service/internal/payout"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server представляет HTTP-сервер.
type Server struct {
	port    string
	router  *chi.Mux
	handler *Handler
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, storage database.Storage, zoneCache cache.Cache, quoter *matching.Quoter, assigner *assignment.Assigner, ledger *payout.Ledger, notifier notify.Notifier) *Server {
	server := &Server{
		port:    port,
		handler: NewHandler(storage, zoneCache, quoter, assigner, ledger, notifier),
	}
	server.router = server.setupRouter()
	return server
}

// Run запускает HTTP-сервер.
func (s *Server) Run() error {
	address := fmt.Sprintf(":%s", s.port)
	fmt.Printf("🚀 HTTP-сервер запущен на http://localhost%s\n", address)
	return http.ListenAndServe(address, otelhttp.NewHandler(s.router, "delivery-service"))
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		// Компании
		r.Post("/companies", s.handler.RegisterCompany)
		r.Get("/companies/{companyID}", s.handler.GetCompany)
		r.Get("/users/{userID}/company", s.handler.GetCompanyByUser)
		r.Post("/companies/{companyID}/status", s.handler.UpdateCompanyStatus)
		r.Delete("/companies/{companyID}", s.handler.DeleteCompany)

		// Зоны доставки
		r.Get("/companies/{companyID}/zones", s.handler.ListZones)
		r.Post("/companies/{companyID}/zones", s.handler.CreateZone)
		r.Put("/zones/{zoneID}", s.handler.UpdateZone)
		r.Delete("/zones/{zoneID}", s.handler.DeleteZone)

		// Расчет ставок на чекауте
		r.Post("/shipping/quote", s.handler.Quote)

		// Заказы доставки
		r.Post("/orders/assign", s.handler.AssignOrder)
		r.Get("/orders/{orderID}", s.handler.GetOrder)
		r.Post("/orders/{orderID}/status", s.handler.UpdateOrderStatus)
		r.Get("/companies/{companyID}/orders", s.handler.ListCompanyOrders)
		r.Get("/vendors/{vendorID}/orders", s.handler.ListVendorOrders)

		// Отмена заказа хост-системой (по order_id хост-системы)
		r.Post("/host-orders/{orderID}/cancel", s.handler.CancelHostOrder)

		// Заработки и выплаты
		r.Get("/companies/{companyID}/earnings", s.handler.ListEarnings)
		r.Get("/companies/{companyID}/earnings/summary", s.handler.EarningsSummary)
		r.Get("/companies/{companyID}/earnings/monthly", s.handler.MonthlyEarnings)
		r.Post("/companies/{companyID}/payout", s.handler.ProcessPayout)
	})

	// Метрики Prometheus
	router.Handle("/metrics", promhttp.Handler())

	return router
}
