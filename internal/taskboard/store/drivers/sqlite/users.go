package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, avatar, provider, google_id, password_hash,
	is_verified, last_login_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		provider  string
		googleID  sql.NullString
		verified  int
		lastLogin sql.NullInt64
		created   int64
		updated   int64
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Avatar, &provider, &googleID,
		&u.PasswordHash, &verified, &lastLogin, &created, &updated)
	if err != nil {
		return domain.User{}, err
	}

	u.Provider = domain.Provider(provider)
	u.GoogleID = mapNullString(googleID)
	u.IsVerified = verified != 0
	u.LastLoginAt = mapNullTimePtr(lastLogin)
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)
	return u, nil
}

func (r *usersRepo) getOne(ctx context.Context, where string, arg any) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, `email = ?`, email)
}

func (r *usersRepo) GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error) {
	if googleID == "" {
		return domain.User{}, store.ErrNotFound
	}
	return r.getOne(ctx, `google_id = ?`, googleID)
}

func (r *usersRepo) ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id IN (`+placeholders(len(ids))+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.Avatar, string(u.Provider), mapStringNull(u.GoogleID),
		u.PasswordHash, boolToInt(u.IsVerified), mapOptionalTime(u.LastLoginAt),
		toMillis(u.CreatedAt), toMillis(u.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id, name, avatar string, at time.Time) error {
	return r.execOne(ctx,
		`UPDATE users SET name = ?, avatar = ?, updated_at = ? WHERE id = ?`,
		name, avatar, toMillis(at), id)
}

func (r *usersRepo) LinkGoogle(ctx context.Context, id, googleID, avatar string, at time.Time) error {
	return r.execOne(ctx, `
		UPDATE users
		SET google_id = ?,
		    provider = 'google',
		    avatar = CASE WHEN ? = '' THEN avatar ELSE ? END,
		    is_verified = 1,
		    updated_at = ?
		WHERE id = ?`,
		googleID, avatar, avatar, toMillis(at), id)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.execOne(ctx,
		`UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ?`,
		toMillis(at), toMillis(at), id)
}

// execOne runs an update that must hit exactly one row.
func (r *usersRepo) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
