package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	escrowBalanceGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "timelock_escrow_balance",
		Help: "Sum of the amounts of all deposits not yet withdrawn.",
	})
	depositsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timelock_deposits_total",
		Help: "Number of deposits created.",
	})
	withdrawalsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timelock_withdrawals_total",
		Help: "Number of deposits withdrawn.",
	})
)
