package class

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

const classColumns = `id, court_id, title, instructor_name, start_time, end_time, max_capacity,
price_cents, status, enrolled_count, cancellation_reason, cancelled_at, created_at, updated_at`

const enrollmentColumns = `id, class_id, user_id, user_name, status, enrolled_at`

// Repository репозиторий для работы с групповыми занятиями и записями на них
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое групповое занятие
func (r *Repository) Create(ctx context.Context, session *domain.ClassSession) (*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("classes").
		Columns(
			"court_id",
			"title",
			"instructor_name",
			"start_time",
			"end_time",
			"max_capacity",
			"price_cents",
			"status",
		).
		Values(
			session.CourtID,
			session.Title,
			session.InstructorName,
			session.StartTime,
			session.EndTime,
			session.MaxCapacity,
			session.PriceCents,
			session.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// GetByID получает занятие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(classColumns).
		From("classes").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	session, err := scanClass(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan class: %v", ErrScanRow, err)
	}

	return session, nil
}

// ListByCourtAndDate получает занятия корта на указанную дату
// По умолчанию возвращает только активные (не отменённые) занятия.
// Внутри транзакции добавляет FOR UPDATE для блокировки строк -
// так проверка пересечений в usecase создания защищена от гонок
func (r *Repository) ListByCourtAndDate(ctx context.Context, courtID int64, date *time.Time, includeInactive bool) ([]*domain.ClassSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(classColumns).
		From("classes").
		Where(squirrel.Eq{"court_id": courtID})

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("start_time::date = ?::date", *date))
	}

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.ClassStatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClasses(rows)
}

// Cancel отменяет занятие с указанием причины
// Отмена - терминальный статус, физическое удаление не выполняется
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("classes").
		Set("status", domain.ClassStatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "Cancel", ErrClassNotFound)
}

// UpdateStatus обновляет статус занятия
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ClassStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("classes").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "UpdateStatus", ErrClassNotFound)
}

// Enroll записывает участника на занятие с проверкой вместимости
// Должен вызываться внутри сериализуемой транзакции: строка занятия
// блокируется через GetByID (FOR UPDATE), после чего сверяется количество
// подтверждённых записей с max_capacity. Повторная запись того же
// пользователя превращается в ErrAlreadyEnrolled через unique constraint
func (r *Repository) Enroll(ctx context.Context, classID, userID int64, userName string) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	session, err := r.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	confirmed, err := r.countConfirmed(ctx, executor, classID)
	if err != nil {
		return nil, err
	}

	if confirmed >= int64(session.MaxCapacity) {
		return nil, ErrClassFull
	}

	query, args, err := psqlbuilder.Insert("enrollments").
		Columns("class_id", "user_id", "user_name", "status").
		Values(classID, userID, userName, domain.EnrollmentStatusConfirmed).
		Suffix("RETURNING id, enrolled_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Enroll - build insert query: %v", ErrBuildQuery, err)
	}

	enrollment := &domain.Enrollment{
		ClassID:  classID,
		UserID:   userID,
		UserName: userName,
		Status:   domain.EnrollmentStatusConfirmed,
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("%w: Enroll - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.syncAfterEnrollmentChange(ctx, executor, session, confirmed+1); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// Withdraw отменяет запись участника на занятие
// Если занятие было заполнено, возвращает его в статус OPEN
func (r *Repository) Withdraw(ctx context.Context, enrollmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	enrollment, err := r.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("enrollments").
		Set("status", domain.EnrollmentStatusWithdrawn).
		Where(squirrel.Eq{"id": enrollmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Withdraw - build update query: %v", ErrBuildQuery, err)
	}

	if err := execExpectingRow(ctx, executor, query, args, "Withdraw", ErrEnrollmentNotFound); err != nil {
		return err
	}

	session, err := r.GetByID(ctx, enrollment.ClassID)
	if err != nil {
		return err
	}

	confirmed, err := r.countConfirmed(ctx, executor, enrollment.ClassID)
	if err != nil {
		return err
	}

	return r.syncAfterEnrollmentChange(ctx, executor, session, confirmed)
}

// GetEnrollment получает запись на занятие по ID
func (r *Repository) GetEnrollment(ctx context.Context, id int64) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(enrollmentColumns).
		From("enrollments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEnrollment - build select query: %v", ErrBuildQuery, err)
	}

	enrollment, err := scanEnrollment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEnrollment - scan enrollment: %v", ErrScanRow, err)
	}

	return enrollment, nil
}

// ListEnrollments получает подтверждённые записи на занятие
func (r *Repository) ListEnrollments(ctx context.Context, classID int64) ([]*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(enrollmentColumns).
		From("enrollments").
		Where(squirrel.Eq{
			"class_id": classID,
			"status":   domain.EnrollmentStatusConfirmed,
		}).
		OrderBy("enrolled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEnrollments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnrollments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// countConfirmed считает подтверждённые записи на занятие
func (r *Repository) countConfirmed(ctx context.Context, executor DBExecutor, classID int64) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("enrollments").
		Where(squirrel.Eq{
			"class_id": classID,
			"status":   domain.EnrollmentStatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: countConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countConfirmed - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// syncAfterEnrollmentChange синхронизирует enrolled_count и статус занятия
// после изменения состава записей: OPEN <-> FULL по текущей заполненности
func (r *Repository) syncAfterEnrollmentChange(ctx context.Context, executor DBExecutor, session *domain.ClassSession, confirmed int64) error {
	updateBuilder := psqlbuilder.Update("classes").
		Set("enrolled_count", confirmed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": session.ID})

	switch {
	case session.Status == domain.ClassStatusOpen && confirmed >= int64(session.MaxCapacity):
		updateBuilder = updateBuilder.Set("status", domain.ClassStatusFull)
	case session.Status == domain.ClassStatusFull && confirmed < int64(session.MaxCapacity):
		updateBuilder = updateBuilder.Set("status", domain.ClassStatusOpen)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: syncAfterEnrollmentChange - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, query, args, "syncAfterEnrollmentChange", ErrClassNotFound)
}

func execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClassFields(row rowScanner, session *domain.ClassSession) error {
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&session.ID,
		&session.CourtID,
		&session.Title,
		&session.InstructorName,
		&session.StartTime,
		&session.EndTime,
		&session.MaxCapacity,
		&session.PriceCents,
		&session.Status,
		&session.EnrolledCount,
		&session.CancellationReason,
		&session.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return err
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time
	return nil
}

func scanClass(row rowScanner) (*domain.ClassSession, error) {
	var session domain.ClassSession
	if err := scanClassFields(row, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func scanClasses(rows *sql.Rows) ([]*domain.ClassSession, error) {
	sessions := make([]*domain.ClassSession, 0)

	for rows.Next() {
		var session domain.ClassSession
		if err := scanClassFields(rows, &session); err != nil {
			return nil, fmt.Errorf("%w: scanClasses - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClasses - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

func scanEnrollment(row rowScanner) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := row.Scan(
		&enrollment.ID,
		&enrollment.ClassID,
		&enrollment.UserID,
		&enrollment.UserName,
		&enrollment.Status,
		&enrollment.EnrolledAt,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func scanEnrollments(rows *sql.Rows) ([]*domain.Enrollment, error) {
	enrollments := make([]*domain.Enrollment, 0)

	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEnrollments - scan row: %v", ErrScanRow, err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEnrollments - rows error: %v", ErrScanRow, err)
	}

	return enrollments, nil
}
