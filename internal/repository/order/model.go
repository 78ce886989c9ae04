package order

import "time"

type OrderDB struct {
	DocID                string
	StoreID              string
	OrderNumber          string
	ShipmentStatus       string
	ConsignmentNumber    string
	CourierPartner       string
	CourierType          string
	WeightKg             float64
	ShippingDate         string
	ExpectedDeliveryDate string
	ShipmentUpdatedAt    time.Time
	CreatedAt            time.Time
}

type StatusHistoryDB struct {
	DocID            string
	ChangedAt        time.Time
	FromStatus       string
	ToStatus         string
	UpdatedByID      string
	UpdatedByContact string
	UpdatedByRole    string
}
