package entities

import (
	"strings"
	"unicode"
)

// ShipmentStatusType — каноническая отображаемая стадия жизненного цикла
// отправления. Формального графа переходов нет: курьеры присылают статусы
// не по порядку и задним числом, поэтому любой статус может смениться любым.
type ShipmentStatusType string

const (
	StatusNew                     ShipmentStatusType = "New"
	StatusAssigned                ShipmentStatusType = "Assigned"
	StatusInTransit               ShipmentStatusType = "In Transit"
	StatusUndelivered             ShipmentStatusType = "Undelivered"
	StatusAtDestination           ShipmentStatusType = "At Destination"
	StatusOutForDelivery          ShipmentStatusType = "Out for Delivery"
	StatusSetRTO                  ShipmentStatusType = "Set RTO"
	StatusDelivered               ShipmentStatusType = "Delivered"
	StatusRTOAccepted             ShipmentStatusType = "RTO Accepted"
	StatusRTOInTransit            ShipmentStatusType = "RTO In Transit"
	StatusRTOReachedAtDestination ShipmentStatusType = "RTO Reached At Destination"
	StatusRTODelivered            ShipmentStatusType = "RTO Delivered"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// AllShipmentStatuses перечисляет 12 канонических статусов в порядке
// жизненного цикла.
var AllShipmentStatuses = []ShipmentStatusType{
	StatusNew,
	StatusAssigned,
	StatusInTransit,
	StatusUndelivered,
	StatusAtDestination,
	StatusOutForDelivery,
	StatusSetRTO,
	StatusDelivered,
	StatusRTOAccepted,
	StatusRTOInTransit,
	StatusRTOReachedAtDestination,
	StatusRTODelivered,
}

// StatusBucket — внутренняя укрупненная группа для фильтрации и поиска.
type StatusBucket string

const (
	BucketNew       StatusBucket = "new"
	BucketAssigned  StatusBucket = "assigned"
	BucketInTransit StatusBucket = "in_transit"
	BucketDelivered StatusBucket = "delivered"
	BucketRTO       StatusBucket = "rto"
)

func (s ShipmentStatusType) Bucket() StatusBucket {
	switch s {
	case StatusNew:
		return BucketNew
	case StatusAssigned:
		return BucketAssigned
	case StatusInTransit, StatusUndelivered, StatusAtDestination, StatusOutForDelivery, StatusSetRTO:
		return BucketInTransit
	case StatusDelivered:
		return BucketDelivered
	case StatusRTOAccepted, StatusRTOInTransit, StatusRTOReachedAtDestination, StatusRTODelivered:
		return BucketRTO
	}
	return ""
}

// legacyStatusAliases — исторические значения статуса из старых выгрузок и
// внутренних полей. Ключи — канонизированные токены.
var legacyStatusAliases = map[string]ShipmentStatusType{
	"new":                        StatusNew,
	"assigned":                   StatusAssigned,
	"in_transit":                 StatusInTransit,
	"intransit":                  StatusInTransit,
	"undelivered":                StatusUndelivered,
	"at_destination":             StatusAtDestination,
	"atdestination":              StatusAtDestination,
	"out_for_delivery":           StatusOutForDelivery,
	"outfordelivery":             StatusOutForDelivery,
	"ofd":                        StatusOutForDelivery,
	"set_rto":                    StatusSetRTO,
	"delivered":                  StatusDelivered,
	"rto_initiated":              StatusRTOAccepted,
	"rto_accepted":               StatusRTOAccepted,
	"rto":                        StatusRTOInTransit,
	"rto_in_transit":             StatusRTOInTransit,
	"rto_reached":                StatusRTOReachedAtDestination,
	"rto_reached_at_destination": StatusRTOReachedAtDestination,
	"rto_at_destination":         StatusRTOReachedAtDestination,
	"rto_delivered":              StatusRTODelivered,
}

// NormalizeShipmentStatus приводит произвольную строку статуса к каноническому
// виду. Порядок: точное совпадение без учета регистра с одним из 12 статусов,
// затем поиск канонизированного токена в таблице legacy-псевдонимов. Пустая
// строка в результате означает нераспознанный статус — вызывающая сторона
// обязана отклонить такое значение, а не подставлять дефолт.
func NormalizeShipmentStatus(raw string) ShipmentStatusType {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, status := range AllShipmentStatuses {
		if strings.EqualFold(trimmed, status.String()) {
			return status
		}
	}

	if status, ok := legacyStatusAliases[canonicalToken(trimmed)]; ok {
		return status
	}
	return ""
}

// canonicalToken приводит строку к snake_case-токену: на границах camelCase
// вставляется подчеркивание, все не-буквенно-цифровые последовательности
// схлопываются в одно подчеркивание, крайние подчеркивания отбрасываются.
func canonicalToken(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 4)

	prevLowerOrDigit := false
	pendingSep := false
	for _, r := range raw {
		isAlnum := unicode.IsLetter(r) || unicode.IsDigit(r)
		if !isAlnum {
			if b.Len() > 0 {
				pendingSep = true
			}
			prevLowerOrDigit = false
			continue
		}

		if unicode.IsUpper(r) && prevLowerOrDigit {
			pendingSep = true
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}

		b.WriteRune(unicode.ToLower(r))
		prevLowerOrDigit = unicode.IsLower(r) || unicode.IsDigit(r)
	}

	return b.String()
}
