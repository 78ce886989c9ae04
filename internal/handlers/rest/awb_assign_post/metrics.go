package awb_assign_post

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AwbAllocationFailedTotal = promauto.NewCounterVec(

	prometheus.CounterOpts{
		Name: "awb_allocation_failed_total",
		Help: "Total number of AWB assign requests rejected because the pool category was exhausted",
	},
	[]string{"category"},
)
