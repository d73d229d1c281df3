package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/green-basket/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveEarnings(ctx context.Context, earnings []entities.Earning) error {
	if len(earnings) == 0 {
		return nil
	}

	q := r.qb.Insert("earnings").Columns(earningColumns...)
	for _, e := range earnings {
		q = q.Values(e.ID, e.UserID, string(e.Role), e.OrderID, int64(e.Amount), string(e.Status), e.CreatedAt)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: earnings already recorded", entities.ErrPreconditionFailed)
		}
		return fmt.Errorf("failed to insert earnings: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListEarnings(ctx context.Context, userID string) ([]entities.Earning, error) {
	query, args := r.qb.Select(earningColumns...).
		From("earnings").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var earnings []Earning
	if err := r.selectContext(ctx, &earnings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select earnings: %w", err)
	}

	result := make([]entities.Earning, 0, len(earnings))
	for _, e := range earnings {
		result = append(result, EarningToEntity(e))
	}
	return result, nil
}
