package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
)

type tasksRepo struct {
	db *sql.DB
}

const taskColumns = `t.seq, t.id, t.title, t.description, t.status, t.priority, t.due_date,
	t.owner_id, t.tags, t.is_archived, t.completed_at, t.version, t.created_at, t.updated_at`

// visibleTo matches non-archived tasks owned by or shared with one user.
// It takes the user id twice.
const visibleTo = `t.is_archived = 0 AND (t.owner_id = ? OR EXISTS (
	SELECT 1 FROM task_shares s WHERE s.task_id = t.id AND s.user_id = ?))`

var sortColumns = map[domain.SortField]string{
	domain.SortCreatedAt: "t.created_at",
	domain.SortUpdatedAt: "t.updated_at",
	domain.SortDueDate:   "t.due_date",
	domain.SortTitle:     "t.title",
	domain.SortPriority: `CASE t.priority
		WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 WHEN 'urgent' THEN 4 END`,
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t         domain.Task
		status    string
		priority  string
		due       sql.NullInt64
		tags      string
		archived  int
		completed sql.NullInt64
		created   int64
		updated   int64
	)
	err := row.Scan(&t.Seq, &t.ID, &t.Title, &t.Description, &status, &priority, &due,
		&t.OwnerID, &tags, &archived, &completed, &t.Version, &created, &updated)
	if err != nil {
		return domain.Task{}, err
	}

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return domain.Task{}, fmt.Errorf("decode tags for task %s: %w", t.ID, err)
	}

	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	t.DueDate = mapNullTimePtr(due)
	t.IsArchived = archived != 0
	t.CompletedAt = mapNullTimePtr(completed)
	t.CreatedAt = fromMillis(created)
	t.UpdatedAt = fromMillis(updated)
	return t, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	return string(b), err
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return domain.Task{}, err
	}

	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, title, description, status, priority, due_date, owner_id,
				tags, is_archived, completed_at, version, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Description, string(t.Status), string(t.Priority),
			mapOptionalTime(t.DueDate), t.OwnerID, tags, boolToInt(t.IsArchived),
			mapOptionalTime(t.CompletedAt), t.Version, toMillis(t.CreatedAt), toMillis(t.UpdatedAt),
		)
		if err != nil {
			return mapConstraint(err)
		}

		t.Seq, err = res.LastInsertId()
		if err != nil {
			return err
		}

		return insertShares(ctx, tx, t.ID, t.SharedWith)
	})
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

func (r *tasksRepo) GetTask(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}

	shares, err := loadShares(ctx, r.db, []string{t.ID})
	if err != nil {
		return domain.Task{}, err
	}
	t.SharedWith = shares[t.ID]
	return t, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task, expectedVersion int64) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE tasks
			SET title = ?, description = ?, status = ?, priority = ?, due_date = ?,
			    tags = ?, is_archived = ?, completed_at = ?, version = ?, updated_at = ?
			WHERE id = ? AND version = ?`,
			t.Title, t.Description, string(t.Status), string(t.Priority), mapOptionalTime(t.DueDate),
			tags, boolToInt(t.IsArchived), mapOptionalTime(t.CompletedAt), t.Version,
			toMillis(t.UpdatedAt), t.ID, expectedVersion,
		)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			var one int
			err := tx.QueryRowContext(ctx, `SELECT 1 FROM tasks WHERE id = ?`, t.ID).Scan(&one)
			if err != nil {
				return mapNotFound(err)
			}
			return store.ErrVersionConflict
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM task_shares WHERE task_id = ?`, t.ID); err != nil {
			return err
		}
		return insertShares(ctx, tx, t.ID, t.SharedWith)
	})
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_shares WHERE task_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

func (r *tasksRepo) ListTasks(ctx context.Context, q store.TaskQuery) ([]domain.Task, int, error) {
	where, args := buildWhere(q)

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks t WHERE `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	sortExpr, ok := sortColumns[q.SortBy]
	if !ok {
		sortExpr = sortColumns[domain.SortCreatedAt]
	}
	dir := "DESC"
	if q.Order == domain.SortAsc {
		dir = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks t WHERE %s ORDER BY %s %s, t.seq %s LIMIT ? OFFSET ?`,
		taskColumns, where, sortExpr, dir, dir)
	rows, err := r.db.QueryContext(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		tasks []domain.Task
		ids   []string
	)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	shares, err := loadShares(ctx, r.db, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range tasks {
		tasks[i].SharedWith = shares[tasks[i].ID]
	}

	return tasks, total, nil
}

func (r *tasksRepo) Stats(ctx context.Context, viewerID string, now time.Time) (domain.Stats, error) {
	var s domain.Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(t.status = 'pending'), 0),
		       COALESCE(SUM(t.status = 'in-progress'), 0),
		       COALESCE(SUM(t.status = 'completed'), 0),
		       COALESCE(SUM(t.due_date IS NOT NULL AND t.due_date < ? AND t.status != 'completed'), 0)
		FROM tasks t
		WHERE `+visibleTo,
		toMillis(now), viewerID, viewerID,
	).Scan(&s.Total, &s.Pending, &s.InProgress, &s.Completed, &s.Overdue)
	return s, err
}

func buildWhere(q store.TaskQuery) (string, []any) {
	clauses := []string{visibleTo}
	args := []any{q.ViewerID, q.ViewerID}

	if q.Status != "" {
		clauses = append(clauses, `t.status = ?`)
		args = append(args, string(q.Status))
	}
	if q.Priority != "" {
		clauses = append(clauses, `t.priority = ?`)
		args = append(args, string(q.Priority))
	}
	if q.OverdueAt != nil {
		clauses = append(clauses, `t.due_date IS NOT NULL AND t.due_date < ? AND t.status != 'completed'`)
		args = append(args, toMillis(*q.OverdueAt))
	}

	return strings.Join(clauses, " AND "), args
}

func insertShares(ctx context.Context, tx *sql.Tx, taskID string, shares []domain.Share) error {
	for _, s := range shares {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO task_shares (task_id, user_id, permission, shared_at)
			VALUES (?, ?, ?, ?)`,
			taskID, s.UserID, string(s.Permission), toMillis(s.SharedAt),
		)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

// loadShares returns the share lists for ids keyed by task id, each in the
// order the entries were written.
func loadShares(ctx context.Context, db dbtx, ids []string) (map[string][]domain.Share, error) {
	out := make(map[string][]domain.Share, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.QueryContext(ctx, `
		SELECT task_id, user_id, permission, shared_at
		FROM task_shares
		WHERE task_id IN (`+placeholders(len(ids))+`)
		ORDER BY rowid`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			taskID     string
			s          domain.Share
			permission string
			sharedAt   int64
		)
		if err := rows.Scan(&taskID, &s.UserID, &permission, &sharedAt); err != nil {
			return nil, err
		}
		s.Permission = domain.Permission(permission)
		s.SharedAt = fromMillis(sharedAt)
		out[taskID] = append(out[taskID], s)
	}
	return out, rows.Err()
}
