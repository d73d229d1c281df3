package entities

import "time"

type EarningStatus string

const (
	EarningPending EarningStatus = "PENDING"
	EarningPaid    EarningStatus = "PAID"
)

type Earning struct {
	ID        string
	UserID    string
	Role      Role
	OrderID   string
	Amount    Amount
	Status    EarningStatus
	CreatedAt time.Time
}

type EarningsSummary struct {
	Total        Amount
	Paid         Amount
	Pending      Amount
	Transactions []Earning
}

func Summarize(earnings []Earning) EarningsSummary {
	s := EarningsSummary{Transactions: earnings}
	for _, e := range earnings {
		s.Total += e.Amount
		switch e.Status {
		case EarningPaid:
			s.Paid += e.Amount
		case EarningPending:
			s.Pending += e.Amount
		}
	}
	return s
}
