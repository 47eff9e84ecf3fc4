package services

import (
	"context"
	"time"

	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"go.uber.org/zap"
)

// SimulatedDeliveryService accepts every submission after a fixed delay.
// It stands in for a real inbox in development and demos.
type SimulatedDeliveryService struct {
	delay time.Duration
	log   *zap.SugaredLogger
}

func NewSimulatedDeliveryService(delay time.Duration) *SimulatedDeliveryService {
	return &SimulatedDeliveryService{delay: delay, log: logger.GetLogger()}
}

func (s *SimulatedDeliveryService) Deliver(ctx context.Context, values contact.FormValues) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.log.Infow("Simulated contact delivery",
		"email", logger.MaskEmail(values.Get(contact.FieldEmail)),
		"category", values.Get(contact.FieldCategory))
	return nil
}
