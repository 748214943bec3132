package matching

import (
	"strings"

	"delivery_service/internal/model"
)

// FindMatchingZone находит первую зону, под которую попадает адрес.
// Зоны ожидаются в порядке zone_name ASC (его дает хранилище) -
// при пересечении зон выигрывает первая в этом порядке.
// Значения зоны - список через запятую; сравнение регистронезависимое,
// с обрезкой пробелов. Зона неизвестного типа никогда не матчится.
func FindMatchingZone(zones []model.Zone, address model.Address) *model.Zone {
	for i := range zones {
		if addressMatchesZone(address, &zones[i]) {
			return &zones[i]
		}
	}
	return nil
}

func addressMatchesZone(address model.Address, zone *model.Zone) bool {
	var field string
	switch zone.ZoneType {
	case model.ZoneTypeCountry:
		field = address.Country
	case model.ZoneTypeState:
		field = address.State
	case model.ZoneTypeCity:
		field = address.City
	case model.ZoneTypePostal:
		field = address.PostalCode
	default:
		return false
	}

	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return false
	}

	for _, token := range strings.Split(zone.ZoneValue, ",") {
		if strings.ToLower(strings.TrimSpace(token)) == field {
			return true
		}
	}
	return false
}

// ShippingCost считает стоимость доставки по зоне: 0, если задан порог
// бесплатной доставки и сумма заказа его достигла, иначе ставка зоны.
// Нулевой порог означает, что бесплатная доставка не применяется.
func ShippingCost(zone *model.Zone, orderSubtotal float64) float64 {
	if zone.FreeShippingThreshold > 0 && orderSubtotal >= zone.FreeShippingThreshold {
		return 0
	}
	return zone.ShippingRate
}
