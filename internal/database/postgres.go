package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"delivery_service/internal/metrics"
	"delivery_service/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=postgres.go -destination=./mocks/storage_mock.go -package=mocks Storage

// Storage определяет интерфейс для работы с хранилищем сервиса доставки.
type Storage interface {
	// Компании
	CreateCompany(ctx context.Context, company *model.Company) (int64, error)
	GetCompanyByID(ctx context.Context, id int64) (*model.Company, error)
	GetCompanyByUserID(ctx context.Context, userID int64) (*model.Company, error)
	ListActiveCompanies(ctx context.Context) ([]model.Company, error)
	UpdateCompanyStatus(ctx context.Context, id int64, status model.CompanyStatus) error
	DeleteCompany(ctx context.Context, id int64) error

	// Зоны доставки
	CreateZone(ctx context.Context, zone *model.Zone) (int64, error)
	GetZoneByID(ctx context.Context, id int64) (*model.Zone, error)
	UpdateZone(ctx context.Context, zone *model.Zone) error
	DeleteZone(ctx context.Context, id int64) error
	ZonesByCompany(ctx context.Context, companyID int64) ([]model.Zone, error)
	ActiveZonesByCompany(ctx context.Context, companyID int64) ([]model.Zone, error)

	// Заказы доставки
	CreateDeliveryOrder(ctx context.Context, order *model.DeliveryOrder, earning *model.Earning) error
	GetDeliveryOrderByID(ctx context.Context, id int64) (*model.DeliveryOrder, error)
	GetDeliveryOrderByOrderID(ctx context.Context, orderID int64) (*model.DeliveryOrder, error)
	ListOrdersByCompany(ctx context.Context, companyID int64, status model.OrderStatus) ([]model.DeliveryOrder, error)
	ListOrdersByVendor(ctx context.Context, vendorID int64) ([]model.DeliveryOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, notes string) (*model.DeliveryOrder, error)
	CancelByOrderID(ctx context.Context, orderID int64) (*model.DeliveryOrder, error)

	// Заработки
	EarningsByCompany(ctx context.Context, companyID int64, status model.EarningStatus) ([]model.Earning, error)
	PendingEarningsByIDs(ctx context.Context, companyID int64, ids []int64) ([]model.Earning, error)
	MarkEarningsPaid(ctx context.Context, ids []int64, paidAt time.Time) error
	EarningsSummary(ctx context.Context, companyID int64) (*model.EarningsSummary, error)
	MonthlyEarnings(ctx context.Context, companyID int64, year int) ([]model.MonthlyEarning, error)

	Close() error
}

// postgresStorage обеспечивает взаимодействие с базой данных PostgreSQL.
// Это конкретная реализация интерфейса Storage.
type postgresStorage struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Storage.
func New(dbURL, migrationsPath string) (Storage, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// Запуск миграций
	if err := runMigrations(dbURL, migrationsPath); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresStorage{
		db:     db,
		tracer: otel.Tracer("postgres-storage"),
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// CreateCompany сохраняет новую компанию (статус pending).
func (s *postgresStorage) CreateCompany(ctx context.Context, company *model.Company) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CreateCompany")
	defer span.End()

	query := `INSERT INTO delivery_companies
		(user_id, company_name, contact_person, email, phone, address, city, state, postal_code, country, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	var id int64
	if err := s.db.GetContext(ctx, &id, query,
		company.UserID, company.CompanyName, company.ContactPerson, company.Email, company.Phone,
		company.Address, company.City, company.State, company.PostalCode, company.Country,
		model.CompanyStatusPending,
	); err != nil {
		metrics.DBErrors.WithLabelValues("create_company").Inc()
		return 0, fmt.Errorf("ошибка сохранения компании: %w", err)
	}

	company.ID = id
	company.Status = model.CompanyStatusPending
	return id, nil
}

// GetCompanyByID извлекает компанию по ее идентификатору.
func (s *postgresStorage) GetCompanyByID(ctx context.Context, id int64) (*model.Company, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetCompanyByID")
	defer span.End()

	var company model.Company
	if err := s.db.GetContext(ctx, &company, `SELECT * FROM delivery_companies WHERE id = $1`, id); err != nil {
		metrics.DBErrors.WithLabelValues("get_company").Inc()
		return nil, fmt.Errorf("не удалось получить компанию: %w", err)
	}
	return &company, nil
}

// GetCompanyByUserID извлекает компанию по user_id хост-системы (уникальный ключ).
func (s *postgresStorage) GetCompanyByUserID(ctx context.Context, userID int64) (*model.Company, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetCompanyByUserID")
	defer span.End()

	var company model.Company
	if err := s.db.GetContext(ctx, &company, `SELECT * FROM delivery_companies WHERE user_id = $1`, userID); err != nil {
		metrics.DBErrors.WithLabelValues("get_company").Inc()
		return nil, fmt.Errorf("не удалось получить компанию по user_id: %w", err)
	}
	return &company, nil
}

// ListActiveCompanies возвращает активные компании в порядке вставки (id ASC).
// Порядок фиксирован: от него зависит, какая компания выиграет подбор по адресу.
func (s *postgresStorage) ListActiveCompanies(ctx context.Context) ([]model.Company, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListActiveCompanies")
	defer span.End()

	var companies []model.Company
	query := `SELECT * FROM delivery_companies WHERE status = 'active' ORDER BY id ASC`
	if err := s.db.SelectContext(ctx, &companies, query); err != nil {
		metrics.DBErrors.WithLabelValues("list_companies").Inc()
		return nil, fmt.Errorf("ошибка получения активных компаний: %w", err)
	}
	return companies, nil
}

// UpdateCompanyStatus переводит компанию в новый статус (модерация администратором).
func (s *postgresStorage) UpdateCompanyStatus(ctx context.Context, id int64, status model.CompanyStatus) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateCompanyStatus")
	defer span.End()

	res, err := s.db.ExecContext(ctx,
		`UPDATE delivery_companies SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		metrics.DBErrors.WithLabelValues("update_company_status").Inc()
		return fmt.Errorf("ошибка обновления статуса компании: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("компания %d не найдена: %w", id, sql.ErrNoRows)
	}
	return nil
}

// DeleteCompany удаляет компанию.
func (s *postgresStorage) DeleteCompany(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteCompany")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM delivery_companies WHERE id = $1`, id); err != nil {
		metrics.DBErrors.WithLabelValues("delete_company").Inc()
		return fmt.Errorf("ошибка удаления компании: %w", err)
	}
	return nil
}

// CreateZone сохраняет новую зону доставки (статус active).
func (s *postgresStorage) CreateZone(ctx context.Context, zone *model.Zone) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CreateZone")
	defer span.End()

	query := `INSERT INTO shipping_zones
		(delivery_company_id, zone_name, zone_type, zone_value, shipping_rate, free_shipping_threshold, estimated_delivery_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int64
	if err := s.db.GetContext(ctx, &id, query,
		zone.DeliveryCompanyID, zone.ZoneName, zone.ZoneType, zone.ZoneValue,
		zone.ShippingRate, zone.FreeShippingThreshold, zone.EstimatedDeliveryDays,
		model.ZoneStatusActive,
	); err != nil {
		metrics.DBErrors.WithLabelValues("create_zone").Inc()
		return 0, fmt.Errorf("ошибка сохранения зоны: %w", err)
	}

	zone.ID = id
	zone.Status = model.ZoneStatusActive
	return id, nil
}

// GetZoneByID извлекает зону по идентификатору.
func (s *postgresStorage) GetZoneByID(ctx context.Context, id int64) (*model.Zone, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetZoneByID")
	defer span.End()

	var zone model.Zone
	if err := s.db.GetContext(ctx, &zone, `SELECT * FROM shipping_zones WHERE id = $1`, id); err != nil {
		metrics.DBErrors.WithLabelValues("get_zone").Inc()
		return nil, fmt.Errorf("не удалось получить зону: %w", err)
	}
	return &zone, nil
}

// UpdateZone обновляет все редактируемые поля зоны.
func (s *postgresStorage) UpdateZone(ctx context.Context, zone *model.Zone) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateZone")
	defer span.End()

	query := `UPDATE shipping_zones SET
		zone_name = $2, zone_type = $3, zone_value = $4, shipping_rate = $5,
		free_shipping_threshold = $6, estimated_delivery_days = $7, status = $8, updated_at = now()
		WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query,
		zone.ID, zone.ZoneName, zone.ZoneType, zone.ZoneValue,
		zone.ShippingRate, zone.FreeShippingThreshold, zone.EstimatedDeliveryDays, zone.Status)
	if err != nil {
		metrics.DBErrors.WithLabelValues("update_zone").Inc()
		return fmt.Errorf("ошибка обновления зоны: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("зона %d не найдена: %w", zone.ID, sql.ErrNoRows)
	}
	return nil
}

// DeleteZone удаляет зону.
func (s *postgresStorage) DeleteZone(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteZone")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM shipping_zones WHERE id = $1`, id); err != nil {
		metrics.DBErrors.WithLabelValues("delete_zone").Inc()
		return fmt.Errorf("ошибка удаления зоны: %w", err)
	}
	return nil
}

// ZonesByCompany возвращает все зоны компании в порядке zone_name ASC.
func (s *postgresStorage) ZonesByCompany(ctx context.Context, companyID int64) ([]model.Zone, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ZonesByCompany")
	defer span.End()

	var zones []model.Zone
	query := `SELECT * FROM shipping_zones WHERE delivery_company_id = $1 ORDER BY zone_name ASC`
	if err := s.db.SelectContext(ctx, &zones, query, companyID); err != nil {
		metrics.DBErrors.WithLabelValues("list_zones").Inc()
		return nil, fmt.Errorf("ошибка получения зон компании: %w", err)
	}
	return zones, nil
}

// ActiveZonesByCompany возвращает только активные зоны компании в порядке zone_name ASC.
// Порядок фиксирован: первая подошедшая зона в этом порядке определяет ставку.
func (s *postgresStorage) ActiveZonesByCompany(ctx context.Context, companyID int64) ([]model.Zone, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ActiveZonesByCompany")
	defer span.End()

	var zones []model.Zone
	query := `SELECT * FROM shipping_zones WHERE delivery_company_id = $1 AND status = 'active' ORDER BY zone_name ASC`
	if err := s.db.SelectContext(ctx, &zones, query, companyID); err != nil {
		metrics.DBErrors.WithLabelValues("list_zones").Inc()
		return nil, fmt.Errorf("ошибка получения активных зон компании: %w", err)
	}
	return zones, nil
}

// CreateDeliveryOrder сохраняет заказ доставки и запись о заработке в одной транзакции.
func (s *postgresStorage) CreateDeliveryOrder(ctx context.Context, order *model.DeliveryOrder, earning *model.Earning) (err error) {
	ctx, span := s.tracer.Start(ctx, "DB.CreateDeliveryOrder")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	// Используем defer с функцией, чтобы корректно обработать panic и ошибки
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	orderQuery := `INSERT INTO delivery_orders
		(order_id, delivery_company_id, vendor_id, customer_id, customer_email, shipping_cost, pickup_address, delivery_address, status, tracking_number, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	var orderID int64
	if err = tx.GetContext(ctx, &orderID, orderQuery,
		order.OrderID, order.DeliveryCompanyID, order.VendorID, order.CustomerID, order.CustomerEmail,
		order.ShippingCost, order.PickupAddress, order.DeliveryAddress,
		model.OrderStatusPending, order.TrackingNumber, order.Notes,
	); err != nil {
		metrics.DBErrors.WithLabelValues("create_delivery_order").Inc()
		return fmt.Errorf("ошибка сохранения заказа доставки: %w", err)
	}

	earningQuery := `INSERT INTO earnings
		(delivery_company_id, order_id, amount, commission_rate, commission_amount, net_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var earningID int64
	if err = tx.GetContext(ctx, &earningID, earningQuery,
		earning.DeliveryCompanyID, earning.OrderID, earning.Amount,
		earning.CommissionRate, earning.CommissionAmount, earning.NetAmount,
		model.EarningStatusPending,
	); err != nil {
		metrics.DBErrors.WithLabelValues("create_earning").Inc()
		return fmt.Errorf("ошибка сохранения заработка: %w", err)
	}

	err = tx.Commit()
	if err == nil {
		order.ID = orderID
		order.Status = model.OrderStatusPending
		earning.ID = earningID
	}
	return err
}

// GetDeliveryOrderByID извлекает заказ доставки по внутреннему идентификатору.
func (s *postgresStorage) GetDeliveryOrderByID(ctx context.Context, id int64) (*model.DeliveryOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetDeliveryOrderByID")
	defer span.End()

	var order model.DeliveryOrder
	if err := s.db.GetContext(ctx, &order, `SELECT * FROM delivery_orders WHERE id = $1`, id); err != nil {
		metrics.DBErrors.WithLabelValues("get_delivery_order").Inc()
		return nil, fmt.Errorf("не удалось получить заказ доставки: %w", err)
	}
	return &order, nil
}

// GetDeliveryOrderByOrderID извлекает заказ доставки по id заказа хост-системы (уникальный ключ).
func (s *postgresStorage) GetDeliveryOrderByOrderID(ctx context.Context, orderID int64) (*model.DeliveryOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetDeliveryOrderByOrderID")
	defer span.End()

	var order model.DeliveryOrder
	if err := s.db.GetContext(ctx, &order, `SELECT * FROM delivery_orders WHERE order_id = $1`, orderID); err != nil {
		metrics.DBErrors.WithLabelValues("get_delivery_order").Inc()
		return nil, fmt.Errorf("не удалось получить заказ доставки по order_id: %w", err)
	}
	return &order, nil
}

// ListOrdersByCompany возвращает заказы компании, опционально фильтруя по статусу.
func (s *postgresStorage) ListOrdersByCompany(ctx context.Context, companyID int64, status model.OrderStatus) ([]model.DeliveryOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListOrdersByCompany")
	defer span.End()

	var orders []model.DeliveryOrder
	var err error
	if status != "" {
		query := `SELECT * FROM delivery_orders WHERE delivery_company_id = $1 AND status = $2 ORDER BY created_at DESC`
		err = s.db.SelectContext(ctx, &orders, query, companyID, status)
	} else {
		query := `SELECT * FROM delivery_orders WHERE delivery_company_id = $1 ORDER BY created_at DESC`
		err = s.db.SelectContext(ctx, &orders, query, companyID)
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_delivery_orders").Inc()
		return nil, fmt.Errorf("ошибка получения заказов компании: %w", err)
	}
	return orders, nil
}

// ListOrdersByVendor возвращает заказы продавца.
func (s *postgresStorage) ListOrdersByVendor(ctx context.Context, vendorID int64) ([]model.DeliveryOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListOrdersByVendor")
	defer span.End()

	var orders []model.DeliveryOrder
	query := `SELECT * FROM delivery_orders WHERE vendor_id = $1 ORDER BY created_at DESC`
	if err := s.db.SelectContext(ctx, &orders, query, vendorID); err != nil {
		metrics.DBErrors.WithLabelValues("list_delivery_orders").Inc()
		return nil, fmt.Errorf("ошибка получения заказов продавца: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus переводит заказ в новый статус. pickup_date и delivery_date
// выставляются ровно один раз (повторный проход через статус их не перезаписывает).
// Валидация допустимости перехода - на вызывающей стороне.
func (s *postgresStorage) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus, notes string) (*model.DeliveryOrder, error) {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateOrderStatus")
	defer span.End()

	query := `UPDATE delivery_orders SET
		status = $2,
		notes = CASE WHEN $3 <> '' THEN $3 ELSE notes END,
		pickup_date = CASE WHEN $2 = 'picked_up' AND pickup_date IS NULL THEN now() ELSE pickup_date END,
		delivery_date = CASE WHEN $2 = 'delivered' AND delivery_date IS NULL THEN now() ELSE delivery_date END,
		updated_at = now()
		WHERE id = $1
		RETURNING *`

	var order model.DeliveryOrder
	if err := s.db.GetContext(ctx, &order, query, id, status, notes); err != nil {
		metrics.DBErrors.WithLabelValues("update_order_status").Inc()
		return nil, fmt.Errorf("ошибка обновления статуса заказа: %w", err)
	}
	return &order, nil
}

// CancelByOrderID отменяет заказ доставки при отмене заказа в хост-системе
// и переводит его невыплаченный заработок в cancelled. Одна транзакция.
// Доставленные и уже отмененные заказы не трогаются.
func (s *postgresStorage) CancelByOrderID(ctx context.Context, orderID int64) (order *model.DeliveryOrder, err error) {
	ctx, span := s.tracer.Start(ctx, "DB.CancelByOrderID")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	orderQuery := `UPDATE delivery_orders SET status = 'cancelled', updated_at = now()
		WHERE order_id = $1 AND status NOT IN ('delivered', 'cancelled')
		RETURNING *`

	var cancelled model.DeliveryOrder
	if err = tx.GetContext(ctx, &cancelled, orderQuery, orderID); err != nil {
		metrics.DBErrors.WithLabelValues("cancel_delivery_order").Inc()
		return nil, fmt.Errorf("не удалось отменить заказ доставки: %w", err)
	}

	earningQuery := `UPDATE earnings SET status = 'cancelled', updated_at = now()
		WHERE order_id = $1 AND status = 'pending'`
	if _, err = tx.ExecContext(ctx, earningQuery, orderID); err != nil {
		metrics.DBErrors.WithLabelValues("cancel_earning").Inc()
		return nil, fmt.Errorf("не удалось отменить заработок: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// EarningsByCompany возвращает заработки компании, опционально фильтруя по статусу.
func (s *postgresStorage) EarningsByCompany(ctx context.Context, companyID int64, status model.EarningStatus) ([]model.Earning, error) {
	ctx, span := s.tracer.Start(ctx, "DB.EarningsByCompany")
	defer span.End()

	var earnings []model.Earning
	var err error
	if status != "" {
		query := `SELECT * FROM earnings WHERE delivery_company_id = $1 AND status = $2 ORDER BY created_at DESC`
		err = s.db.SelectContext(ctx, &earnings, query, companyID, status)
	} else {
		query := `SELECT * FROM earnings WHERE delivery_company_id = $1 ORDER BY created_at DESC`
		err = s.db.SelectContext(ctx, &earnings, query, companyID)
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_earnings").Inc()
		return nil, fmt.Errorf("ошибка получения заработков: %w", err)
	}
	return earnings, nil
}

// PendingEarningsByIDs возвращает из запрошенных id только те заработки,
// которые принадлежат компании и находятся в статусе pending.
// Несовпавшие id молча отбрасываются - это поведение выплат зафиксировано.
func (s *postgresStorage) PendingEarningsByIDs(ctx context.Context, companyID int64, ids []int64) ([]model.Earning, error) {
	ctx, span := s.tracer.Start(ctx, "DB.PendingEarningsByIDs")
	defer span.End()

	var earnings []model.Earning
	query := `SELECT * FROM earnings
		WHERE id = ANY($1) AND delivery_company_id = $2 AND status = 'pending'
		ORDER BY id ASC`
	if err := s.db.SelectContext(ctx, &earnings, query, pq.Array(ids), companyID); err != nil {
		metrics.DBErrors.WithLabelValues("list_earnings").Inc()
		return nil, fmt.Errorf("ошибка выборки заработков для выплаты: %w", err)
	}
	return earnings, nil
}

// MarkEarningsPaid помечает заработки выплаченными с общим paid_at.
func (s *postgresStorage) MarkEarningsPaid(ctx context.Context, ids []int64, paidAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "DB.MarkEarningsPaid")
	defer span.End()

	query := `UPDATE earnings SET status = 'paid', paid_at = $2, updated_at = now() WHERE id = ANY($1)`
	if _, err := s.db.ExecContext(ctx, query, pq.Array(ids), paidAt); err != nil {
		metrics.DBErrors.WithLabelValues("mark_earnings_paid").Inc()
		return fmt.Errorf("ошибка отметки заработков выплаченными: %w", err)
	}
	return nil
}

// EarningsSummary возвращает агрегаты по заработкам компании одним запросом.
func (s *postgresStorage) EarningsSummary(ctx context.Context, companyID int64) (*model.EarningsSummary, error) {
	ctx, span := s.tracer.Start(ctx, "DB.EarningsSummary")
	defer span.End()

	query := `SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(SUM(commission_amount), 0) AS total_commission,
			COALESCE(SUM(net_amount), 0) AS total_net,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN net_amount ELSE 0 END), 0) AS pending_amount,
			COALESCE(SUM(CASE WHEN status = 'paid' THEN net_amount ELSE 0 END), 0) AS paid_amount
		FROM earnings
		WHERE delivery_company_id = $1`

	var summary model.EarningsSummary
	if err := s.db.GetContext(ctx, &summary, query, companyID); err != nil {
		metrics.DBErrors.WithLabelValues("earnings_summary").Inc()
		return nil, fmt.Errorf("ошибка получения сводки заработков: %w", err)
	}
	return &summary, nil
}

// MonthlyEarnings возвращает помесячную разбивку заработков за год.
func (s *postgresStorage) MonthlyEarnings(ctx context.Context, companyID int64, year int) ([]model.MonthlyEarning, error) {
	ctx, span := s.tracer.Start(ctx, "DB.MonthlyEarnings")
	defer span.End()

	query := `SELECT
			EXTRACT(MONTH FROM created_at)::int AS month,
			COUNT(*) AS orders,
			COALESCE(SUM(net_amount), 0) AS amount
		FROM earnings
		WHERE delivery_company_id = $1 AND EXTRACT(YEAR FROM created_at) = $2
		GROUP BY month
		ORDER BY month ASC`

	var earnings []model.MonthlyEarning
	if err := s.db.SelectContext(ctx, &earnings, query, companyID, year); err != nil {
		metrics.DBErrors.WithLabelValues("monthly_earnings").Inc()
		return nil, fmt.Errorf("ошибка получения помесячных заработков: %w", err)
	}
	return earnings, nil
}

// Close закрывает соединение с БД.
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
