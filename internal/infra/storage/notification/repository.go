package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/dbmetrics"
	"github.com/m04kA/chargemate-booking/pkg/psqlbuilder"
)

// Repository лента уведомлений пользователей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_email", "type", "title", "message", "timestamp", "read", "action_url", "action_text").
		Values(n.UserEmail, string(n.Type), n.Title, n.Message, n.Timestamp, n.Read, n.ActionURL, n.ActionText).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

var columns = []string{
	"id", "user_email", "type", "title", "message", "timestamp", "read", "action_url", "action_text",
}

// ownedBy условие на владельца уведомления, email сравнивается без учёта регистра
func ownedBy(email string) squirrel.Sqlizer {
	return squirrel.Expr("LOWER(user_email) = ?", strings.ToLower(email))
}

// ListByUser уведомления пользователя, сначала новые.
// При unreadOnly возвращаются только непрочитанные.
func (r *Repository) ListByUser(ctx context.Context, email string, unreadOnly bool) ([]domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("notifications").
		Where(ownedBy(email))
	if unreadOnly {
		builder = builder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := builder.OrderBy("timestamp DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan notification: %v", ErrScanRow, err)
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// MarkRead отмечает уведомление пользователя прочитанным и возвращает его
func (r *Repository) MarkRead(ctx context.Context, id int64, email string) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		Where(ownedBy(email)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	n, err := scanNotification(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: MarkRead - execute update: %w", ErrExecQuery, err)
	}
	return n, nil
}

// MarkAllRead отмечает прочитанными все уведомления пользователя, возвращает число изменённых
func (r *Repository) MarkAllRead(ctx context.Context, email string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(ownedBy(email)).
		Where(squirrel.Eq{"read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - execute update: %w", ErrExecQuery, err)
	}
	modified, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - get rows affected: %v", ErrExecQuery, err)
	}
	return modified, nil
}

// Delete удаляет уведомление пользователя
func (r *Repository) Delete(ctx context.Context, id int64, email string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("notifications").
		Where(squirrel.Eq{"id": id}).
		Where(ownedBy(email)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var (
		n     domain.Notification
		ntype string
	)
	if err := row.Scan(&n.ID, &n.UserEmail, &ntype, &n.Title, &n.Message, &n.Timestamp, &n.Read, &n.ActionURL, &n.ActionText); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(ntype)
	return &n, nil
}
