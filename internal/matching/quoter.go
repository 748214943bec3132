package matching

import (
	"context"
	"fmt"
	"log"

	"delivery_service/internal/cache"
	"delivery_service/internal/config"
	"delivery_service/internal/database"
	"delivery_service/internal/metrics"
	"delivery_service/internal/model"
)

// Quoter рассчитывает ставки доставки и подбирает компанию по адресу.
// Активные зоны компаний кэшируются (LRU); порядок перебора компаний
// фиксирован - id ASC, его дает ListActiveCompanies.
type Quoter struct {
	storage database.Storage
	cache   cache.Cache
	cfg     config.DeliveryConfig
}

// NewQuoter создает новый экземпляр Quoter.
func NewQuoter(storage database.Storage, zoneCache cache.Cache, cfg config.DeliveryConfig) *Quoter {
	return &Quoter{storage: storage, cache: zoneCache, cfg: cfg}
}

// activeZones возвращает активные зоны компании, сначала заглядывая в кэш.
func (q *Quoter) activeZones(ctx context.Context, companyID int64) ([]model.Zone, error) {
	key := cache.ZoneKey(companyID)
	if cached, found := q.cache.Get(ctx, key); found {
		metrics.CacheHits.Inc()
		if zones, ok := cached.([]model.Zone); ok {
			return zones, nil
		}
	}
	metrics.CacheMisses.Inc()

	zones, err := q.storage.ActiveZonesByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, key, zones)
	return zones, nil
}

// Quote возвращает по одной ставке на каждую активную компанию,
// обслуживающую адрес: метка вида "<компания> to <зона> (N days)",
// стоимость с учетом порога бесплатной доставки и метаданные зоны.
func (q *Quoter) Quote(ctx context.Context, address model.Address, orderSubtotal float64) ([]model.ShippingQuote, error) {
	if !q.cfg.Enabled {
		return nil, nil
	}

	companies, err := q.storage.ListActiveCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения компаний для расчета ставок: %w", err)
	}

	var quotes []model.ShippingQuote
	for _, company := range companies {
		zones, err := q.activeZones(ctx, company.ID)
		if err != nil {
			log.Printf("Ошибка получения зон компании %d: %v", company.ID, err)
			continue
		}

		zone := FindMatchingZone(zones, address)
		if zone == nil {
			continue
		}

		quotes = append(quotes, model.ShippingQuote{
			DeliveryCompanyID:     company.ID,
			DeliveryCompanyName:   company.CompanyName,
			ZoneID:                zone.ID,
			ZoneName:              zone.ZoneName,
			Label:                 quoteLabel(company.CompanyName, zone),
			Cost:                  ShippingCost(zone, orderSubtotal),
			EstimatedDeliveryDays: zone.EstimatedDeliveryDays,
		})
		metrics.QuotesCalculated.Inc()
	}

	return quotes, nil
}

// FindCompanyForAddress возвращает первую активную компанию, у которой
// есть зона, покрывающая адрес (путь автоподбора при назначении заказа).
func (q *Quoter) FindCompanyForAddress(ctx context.Context, address model.Address) (*model.Company, error) {
	companies, err := q.storage.ListActiveCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения компаний для подбора: %w", err)
	}

	for i := range companies {
		zones, err := q.activeZones(ctx, companies[i].ID)
		if err != nil {
			log.Printf("Ошибка получения зон компании %d: %v", companies[i].ID, err)
			continue
		}
		if FindMatchingZone(zones, address) != nil {
			return &companies[i], nil
		}
	}

	return nil, nil
}

// quoteLabel собирает описательную метку ставки для чекаута.
func quoteLabel(companyName string, zone *model.Zone) string {
	label := companyName
	if zone.ZoneName != "" {
		label += " to " + zone.ZoneName
	}
	if zone.EstimatedDeliveryDays > 0 {
		unit := "days"
		if zone.EstimatedDeliveryDays == 1 {
			unit = "day"
		}
		label += fmt.Sprintf(" (%d %s)", zone.EstimatedDeliveryDays, unit)
	}
	return label
}
