package service

import (
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

// Calendar источник времени движка. "Сегодня" считается в часовом поясе бизнеса.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

func (c *Calendar) Now() time.Time {
	return c.now().UTC()
}

// Today дата в формате YYYY-MM-DD.
func (c *Calendar) Today() string {
	return c.now().In(c.loc).Format(time.DateOnly)
}

type Pricing struct {
	freeThreshold entities.Amount
	fee           entities.Amount
}

func NewPricing(cfg config.Pricing) Pricing {
	return Pricing{
		freeThreshold: entities.Amount(cfg.FreeDeliveryThreshold),
		fee:           entities.Amount(cfg.DeliveryFee),
	}
}

// DeliveryFee бесплатная доставка от порога включительно.
func (p Pricing) DeliveryFee(subtotal entities.Amount) entities.Amount {
	if subtotal >= p.freeThreshold {
		return 0
	}
	return p.fee
}
