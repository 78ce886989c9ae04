package pool_metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/navneet-limitinfinity/haul-riders-sub000/internal/entities"
)

var poolUnassignedGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "awb_pool_unassigned_total",
		Help: "Number of unassigned AWB numbers per pool category",
	},
	[]string{"category"},
)

type Service interface {
	CountUnassigned(ctx context.Context) (map[entities.AwbCategory]int64, error)
}

// PoolMetrics периодически выгружает остатки пула в prometheus, чтобы
// исчерпание категории было видно до того, как начнутся отказы выделения.
type PoolMetrics struct {
	service  Service
	interval time.Duration
}

func NewPoolMetrics(service Service, interval time.Duration) *PoolMetrics {
	return &PoolMetrics{
		service:  service,
		interval: interval,
	}
}

func (p *PoolMetrics) TTL() time.Duration {
	return p.interval
}

func (p *PoolMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	counts, err := p.service.CountUnassigned(ctxWithTimeout)
	if err != nil {
		return err
	}

	// категории без свободных номеров тоже должны обнуляться
	for _, category := range []entities.AwbCategory{
		entities.CategoryZExpress,
		entities.CategoryDPrepaid,
		entities.CategoryDCod,
	} {
		poolUnassignedGauge.WithLabelValues(category.String()).Set(float64(counts[category]))
	}

	return nil
}

func (p *PoolMetrics) Info() string {
	return "awb pool metrics"
}
