package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/entities"
)

const (
	CodeLength = 6

	// DevelopmentCode подставляется вместо случайного кода вне production.
	DevelopmentCode = "123456"

	ModeProduction = "production"
)

type Generator interface {
	Generate() (string, error)
}

type fixedGenerator string

func (g fixedGenerator) Generate() (string, error) {
	return string(g), nil
}

type randomGenerator struct{}

var maxCode = big.NewInt(1_000_000)

func (randomGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, maxCode)
	if err != nil {
		return "", fmt.Errorf("failed to read random: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

func NewGenerator(mode string) Generator {
	if mode == ModeProduction {
		return randomGenerator{}
	}
	return fixedGenerator(DevelopmentCode)
}

// AttemptStore считает попытки ввода кода по заказу. Attempt атомарно
// увеличивает счетчик и возвращает новое значение, окно задается первой попыткой.
type AttemptStore interface {
	Attempt(ctx context.Context, orderID string, window time.Duration) (int, error)
	Reset(ctx context.Context, orderID string) error
}

type Gate struct {
	gen         Generator
	store       AttemptStore
	maxAttempts int
	window      time.Duration
}

func NewGate(gen Generator, store AttemptStore, cfg config.OTP) *Gate {
	return &Gate{
		gen:         gen,
		store:       store,
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.AttemptWindow,
	}
}

func (g *Gate) Issue(ctx context.Context) (string, error) {
	return g.gen.Generate()
}

// Verify сверяет введенный код с выданным. Попытка занимается до сравнения,
// поэтому в окне сравнивается не больше maxAttempts кодов, даже при параллельных запросах.
func (g *Gate) Verify(ctx context.Context, orderID, issued, submitted string) error {
	n, err := g.store.Attempt(ctx, orderID, g.window)
	if err != nil {
		return fmt.Errorf("failed to record otp attempt: %w", err)
	}
	if n > g.maxAttempts {
		return entities.ErrOTPAttemptsExceeded
	}

	if issued != "" && subtle.ConstantTimeCompare([]byte(issued), []byte(submitted)) == 1 {
		return nil
	}
	return entities.ErrInvalidOTP
}

func (g *Gate) Clear(ctx context.Context, orderID string) error {
	return g.store.Reset(ctx, orderID)
}
