package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"
	"github.com/SergeyBogomolovv/green-basket/pkg/trm"
)

type PartnerAllocator struct {
	txManager trm.Manager
	users     UserRepo
	orders    OrderRepo
	otp       OTPGate
}

func NewPartnerAllocator(txManager trm.Manager, users UserRepo, orders OrderRepo, otp OTPGate) *PartnerAllocator {
	return &PartnerAllocator{txManager: txManager, users: users, orders: orders, otp: otp}
}

// Allocate занимает свободного курьера, выпускает OTP и привязывает обоих к заказу.
// Внутри транзакции вызывающего работает в savepoint: неудачная привязка откатывает
// захват курьера, а перевод заказа остается в силе.
// Если курьеров нет или выбранный уже занят, возвращает ErrNoPartnerAvailable.
func (a *PartnerAllocator) Allocate(ctx context.Context, orderID string) (entities.User, error) {
	var partner entities.User
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		claimed, err := a.users.ClaimPartner(ctx)
		if err != nil {
			return err
		}

		code, err := a.otp.Issue(ctx)
		if err != nil {
			return fmt.Errorf("failed to issue otp: %w", err)
		}

		if err := a.orders.BindPartner(ctx, orderID, claimed.ID, code); err != nil {
			return err
		}
		partner = claimed
		return nil
	})
	if errors.Is(err, entities.ErrPartnerBusy) {
		return entities.User{}, fmt.Errorf("%w: %v", entities.ErrNoPartnerAvailable, err)
	}
	if err != nil {
		return entities.User{}, err
	}
	return partner, nil
}
