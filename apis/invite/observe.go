package invite

import (
	"campus_backend/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var issuedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prometheus.BuildFQName(config.AppName, "invite", "issued"),
})

var redeemSuccessCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prometheus.BuildFQName(config.AppName, "redeem", "success"),
})

var redeemFailureCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: prometheus.BuildFQName(config.AppName, "redeem", "failure"),
	},
	[]string{"reason"},
)
