package order

import "github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"

// ToDomain — единственная точка, где статус из хранилища попадает в домен.
// Нормализация здесь изолирует остальной код от исторического дрейфа схемы:
// старые выгрузки писали статус legacy-токенами (in_transit, atDestination).
func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		DocID:       o.DocID,
		StoreID:     o.StoreID,
		OrderNumber: o.OrderNumber,
		Shipment: entities.ShipmentRecord{
			Status:               NormalizeStoredStatus(o.ShipmentStatus),
			ConsignmentNumber:    o.ConsignmentNumber,
			CourierPartner:       o.CourierPartner,
			CourierType:          o.CourierType,
			WeightKg:             o.WeightKg,
			ShippingDate:         o.ShippingDate,
			ExpectedDeliveryDate: o.ExpectedDeliveryDate,
			UpdatedAt:            o.ShipmentUpdatedAt,
		},
		CreatedAt: o.CreatedAt,
	}
}

func NormalizeStoredStatus(raw string) entities.ShipmentStatusType {
	return entities.NormalizeShipmentStatus(raw)
}
