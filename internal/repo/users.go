package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetUser(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) UsersByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	if len(ids) == 0 {
		return []entities.User{}, nil
	}

	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make([]entities.User, 0, len(users))
	for _, u := range users {
		result = append(result, UserToEntity(u))
	}
	return result, nil
}

// ClaimPartner выбирает первого свободного курьера и снимает его доступность одним выражением.
// Конкурентные вызовы пропускают строки, уже заблокированные другими транзакциями.
func (r *postgresRepo) ClaimPartner(ctx context.Context) (entities.User, error) {
	candidate := sq.Select("id").
		From("users").
		Where(sq.Eq{
			"role":            string(entities.RoleDelivery),
			"approval_status": string(entities.ApprovalApproved),
			"status":          string(entities.AccountActive),
			"is_available":    true,
		}).
		OrderBy("id").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED")

	query, args := r.qb.Update("users").
		Set("is_available", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Expr("id = (?)", candidate)).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrNoPartnerAvailable
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to claim partner: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *postgresRepo) SetAvailability(ctx context.Context, partnerID string, available bool) error {
	query, args := r.qb.Update("users").
		Set("is_available", available).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": partnerID, "role": string(entities.RoleDelivery)}).
		MustSql()

	ok, err := r.affectedOne(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepo) ConfirmDailyStock(ctx context.Context, sellerID, date string) error {
	query, args := r.qb.Update("users").
		Set("daily_stock_date", date).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": sellerID, "role": string(entities.RoleSeller)}).
		MustSql()

	ok, err := r.affectedOne(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to stamp daily stock date: %w", err)
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	return nil
}
