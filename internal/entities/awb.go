package entities

import (
	"strings"
	"time"
)

// AwbCategory разбивает пул трек-номеров по типу курьерской услуги.
type AwbCategory string

const (
	CategoryZExpress AwbCategory = "z_express"
	CategoryDPrepaid AwbCategory = "d_prepaid"
	CategoryDCod     AwbCategory = "d_cod"
)

// DefaultCategory используется для нераспознанных типов курьера.
const DefaultCategory = CategoryDPrepaid

func (c AwbCategory) String() string {
	return string(c)
}

// courierTypeCategories — фиксированная таблица соответствия свободного
// текста типа курьера категории пула. Ключи — канонизированные токены.
var courierTypeCategories = map[string]AwbCategory{
	"z_express":   CategoryZExpress,
	"zexpress":    CategoryZExpress,
	"z_air":       CategoryZExpress,
	"d_surface":   CategoryDPrepaid,
	"d_prepaid":   CategoryDPrepaid,
	"d_air":       CategoryDPrepaid,
	"prepaid":     CategoryDPrepaid,
	"cod":         CategoryDCod,
	"cod_air":     CategoryDCod,
	"cod_surface": CategoryDCod,
	"d_cod":       CategoryDCod,
}

// CategoryForCourierType сопоставляет произвольную метку типа курьера
// ("Z- Express", "D- Surface", "COD Air") категории пула. Второй результат
// false означает, что метка не распознана и взят DefaultCategory — вызывающая
// сторона решает, логировать ли такой fallback.
func CategoryForCourierType(courierType string) (AwbCategory, bool) {
	category, ok := courierTypeCategories[canonicalToken(courierType)]
	if !ok {
		return DefaultCategory, false
	}
	return category, true
}

// poolColumnCategories — допустимые варианты заголовков колонок при загрузке
// пула ("Z - Express", "Z- Express", "z_express" дают один и тот же токен).
var poolColumnCategories = map[string]AwbCategory{
	"z_express": CategoryZExpress,
	"zexpress":  CategoryZExpress,
	"d_prepaid": CategoryDPrepaid,
	"prepaid":   CategoryDPrepaid,
	"d_cod":     CategoryDCod,
	"cod":       CategoryDCod,
}

func CategoryForPoolColumn(header string) (AwbCategory, bool) {
	category, ok := poolColumnCategories[canonicalToken(header)]
	return category, ok
}

// NormalizeAwbNumber приводит трек-номер к каноническому виду: остаются
// только буквы и цифры, буквы переводятся в верхний регистр.
func NormalizeAwbNumber(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	return b.String()
}

// SplitAwbCell разбирает ячейку, в которой может лежать несколько трек-номеров
// через пробел, запятую, точку с запятой или вертикальную черту.
func SplitAwbCell(cell string) []string {
	return strings.FieldsFunc(cell, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', ';', '|':
			return true
		}
		return false
	})
}

// AwbEntry — единица инвентаря пула. Инвариант: запись либо полностью
// свободна (Assigned=false, все поля назначения пустые), либо полностью
// занята; промежуточных состояний в хранилище не бывает.
type AwbEntry struct {
	Number          string
	Category        AwbCategory
	Assigned        bool
	AssignedAt      *time.Time
	ReleasedAt      *time.Time
	AssignedDocID   string
	AssignedStoreID string
	OrderID         string
	RequestID       string
	ReleasedByDocID string
	UploadedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PoolEntryUpsert — дедуплицированная строка загрузки пула.
type PoolEntryUpsert struct {
	Number     string
	Category   AwbCategory
	UploadedBy string
}

type PoolUploadSummary struct {
	Total   int
	Created int
	Updated int
	Skipped int
}

// AwbAllocation — результат успешного выделения трек-номера заказу.
type AwbAllocation struct {
	AwbNumber  string
	Category   AwbCategory
	AssignedAt time.Time
}

type AwbAssignment struct {
	Number     string
	Category   AwbCategory
	DocID      string
	StoreID    string
	OrderID    string
	RequestID  string
	AssignedAt time.Time
}

type AwbRelease struct {
	AwbNumber  string
	ReleasedAt time.Time
}
