package entities

import (
	"fmt"
	"math"
	"strconv"
)

// Amount денежная сумма в минимальных единицах валюты (пайсы).
type Amount int64

func AmountFromMajor(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// Percent возвращает pct процентов от суммы, округленные до минимальной единицы.
func (a Amount) Percent(pct int64) Amount {
	v := int64(a) * pct
	if v < 0 {
		return Amount((v - 50) / 100)
	}
	return Amount((v + 50) / 100)
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = AmountFromMajor(f)
	return nil
}
