package services

import (
	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// NewDeliverer picks the delivery channel configured for contact messages.
// The deliverer logs to log, or to the global logger when log is nil.
func NewDeliverer(cfg *config.Config, schema *contact.FormSchema, log *zap.SugaredLogger) contact.Deliverer {
	if log == nil {
		log = logger.GetLogger()
	}
	if cfg.Contact.DeliveryMode == config.DeliveryEmail {
		return newEmailDeliveryService(&cfg.Email, cfg.Contact.Recipient, schema, prometheus.DefaultRegisterer, log)
	}
	d := NewSimulatedDeliveryService(cfg.Contact.SimulatedDelay())
	d.log = log
	return d
}
