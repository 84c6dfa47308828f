package membership

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PCM-SchedulingService/internal/domain"
	"github.com/m04kA/PCM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/PCM-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL при нарушении unique constraint
const pgUniqueViolation = "23505"

const membershipColumns = `id, club_id, user_id, status, payment_status, monthly_fee_cents,
start_date, end_date, next_billing_date, created_at, updated_at`

// Repository репозиторий для работы с клубными абонементами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория абонементов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый абонемент
// Повторное вступление в тот же клуб превращается в ErrDuplicateMembership
func (r *Repository) Create(ctx context.Context, membership *domain.ClubMembership) (*domain.ClubMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("memberships").
		Columns(
			"club_id",
			"user_id",
			"status",
			"payment_status",
			"monthly_fee_cents",
			"start_date",
			"next_billing_date",
		).
		Values(
			membership.ClubID,
			membership.UserID,
			membership.Status,
			membership.PaymentStatus,
			membership.MonthlyFeeCents,
			membership.StartDate,
			membership.NextBillingDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&membership.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateMembership
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	membership.CreatedAt = createdAt.Time
	membership.UpdatedAt = updatedAt.Time

	return membership, nil
}

// GetByID получает абонемент по ID
// Внутри транзакции блокирует строку через FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ClubMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(membershipColumns).
		From("memberships").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	membership, err := scanMembership(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan membership: %v", ErrScanRow, err)
	}

	return membership, nil
}

// ListByUser получает абонементы пользователя
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.ClubMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns).
		From("memberships").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	memberships := make([]*domain.ClubMembership, 0)
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		memberships = append(memberships, membership)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return memberships, nil
}

// UpdateStatus обновляет статус абонемента
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MembershipStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("memberships").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel переводит абонемент в терминальный статус CANCELLED
// и фиксирует дату окончания. Запись сохраняется для истории
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("memberships").
		Set("status", domain.MembershipStatusCancelled).
		Set("end_date", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "Cancel")
}

// UpdateBilling обновляет статус оплаты и дату следующего списания
// после попытки продления
func (r *Repository) UpdateBilling(ctx context.Context, id int64, paymentStatus domain.MembershipPaymentStatus, nextBillingDate *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("memberships").
		Set("payment_status", paymentStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if nextBillingDate != nil {
		updateBuilder = updateBuilder.Set("next_billing_date", *nextBillingDate)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateBilling - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "UpdateBilling")
}

// UpdateNextBillingDate сдвигает дату следующего списания
func (r *Repository) UpdateNextBillingDate(ctx context.Context, id int64, nextBillingDate time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("memberships").
		Set("next_billing_date", nextBillingDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNextBillingDate - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "UpdateNextBillingDate")
}

func execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMembership(row rowScanner) (*domain.ClubMembership, error) {
	var membership domain.ClubMembership
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&membership.ID,
		&membership.ClubID,
		&membership.UserID,
		&membership.Status,
		&membership.PaymentStatus,
		&membership.MonthlyFeeCents,
		&membership.StartDate,
		&membership.EndDate,
		&membership.NextBillingDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	membership.CreatedAt = createdAt.Time
	membership.UpdatedAt = updatedAt.Time
	return &membership, nil
}
