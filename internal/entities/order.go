package entities

import (
	"crypto/sha1" //nolint:gosec // не криптография: детерминированный ключ документа
	"encoding/hex"
	"strings"
	"time"
)

// Order — документ заказа. Shipment встроен в заказ один-к-одному и живет,
// пока существует заказ.
type Order struct {
	DocID       string
	StoreID     string
	OrderNumber string
	Shipment    ShipmentRecord
	CreatedAt   time.Time
}

// ShipmentRecord — под-состояние отправления внутри заказа.
type ShipmentRecord struct {
	Status               ShipmentStatusType
	ConsignmentNumber    string
	CourierPartner       string
	CourierType          string
	WeightKg             float64
	ShippingDate         string
	ExpectedDeliveryDate string
	UpdatedAt            time.Time
}

// StatusHistoryEntry — неизменяемая запись аудита смены статуса.
// Только добавление, никогда не правится и не удаляется.
type StatusHistoryEntry struct {
	ChangedAt time.Time
	From      ShipmentStatusType
	To        ShipmentStatusType
	UpdatedBy Actor
}

// Actor — кто выполнил изменение.
type Actor struct {
	ID      string
	Contact string
	Role    string
}

type OrderCreate struct {
	StoreID     string
	OrderNumber string
	CourierType string
	WeightKg    float64
}

type StatusUpdate struct {
	DocID     string
	Status    ShipmentStatusType
	UpdatedAt time.Time
}

type BulkStatusRow struct {
	ConsignmentNumber string
	RawStatus         string
}

type BulkStatusSummary struct {
	Processed int
	Updated   int
	Failed    int
	Errors    []string
}

// OrderDocID вычисляет детерминированный ключ документа заказа из его
// натурального ключа (магазин + номер заказа). Повторный вызов для одного
// заказа всегда дает тот же ключ.
func OrderDocID(storeID, orderNumber string) string {
	natural := strings.ToLower(strings.TrimSpace(storeID)) + "/" + strings.TrimSpace(orderNumber)
	sum := sha1.Sum([]byte(natural)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
