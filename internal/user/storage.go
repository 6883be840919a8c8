package user

import (
	"context"
	"errors"
	"fmt"

	"terabox-dl-bot/pkg"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo interface {
	InsertUser(ctx context.Context, user DBUser) error
	GetUser(ctx context.Context, userID int64) (*DBUser, error)
	IncrementDownloads(ctx context.Context, userID int64) error
	CountUsers(ctx context.Context) (int, error)
	InsertBan(ctx context.Context, userID int64) error
	DeleteBan(ctx context.Context, userID int64) error
	BanExists(ctx context.Context, userID int64) (bool, error)
}

type DefaultRepo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewDefaultRepo(pool *pgxpool.Pool) Repo {
	return &DefaultRepo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (d *DefaultRepo) InsertUser(ctx context.Context, user DBUser) error {
	query, args, err := d.sb.
		Insert("users").
		Columns("user_id", "first_name", "downloads").
		Values(user.UserID, user.FirstName, user.Downloads).
		Suffix("on conflict (user_id) do nothing").
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{Cause: "failed to build insert user query", Err: err}
	}

	if _, err := d.pool.Exec(ctx, query, args...); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to insert user",
			Info:  fmt.Sprintf("userID: %d", user.UserID),
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) GetUser(ctx context.Context, userID int64) (*DBUser, error) {
	query, args, err := d.sb.
		Select("user_id", "first_name", "downloads", "created_at").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, &pkg.ErrDBProcedure{Cause: "failed to build select user query", Err: err}
	}

	var user DBUser
	row := d.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&user.UserID, &user.FirstName, &user.Downloads, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &pkg.ErrDBProcedure{
			Cause: "failed to select user",
			Info:  fmt.Sprintf("userID: %d", userID),
			Err:   err,
		}
	}
	return &user, nil
}

func (d *DefaultRepo) IncrementDownloads(ctx context.Context, userID int64) error {
	query, args, err := d.sb.
		Update("users").
		Set("downloads", sq.Expr("downloads + 1")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{Cause: "failed to build update query", Err: err}
	}

	if _, err := d.pool.Exec(ctx, query, args...); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to increment downloads",
			Info:  fmt.Sprintf("userID: %d", userID),
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) CountUsers(ctx context.Context) (int, error) {
	query, args, err := d.sb.Select("count(*)").From("users").ToSql()
	if err != nil {
		return 0, &pkg.ErrDBProcedure{Cause: "failed to build count query", Err: err}
	}

	var count int
	if err := d.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, &pkg.ErrDBProcedure{Cause: "failed to count users", Err: err}
	}
	return count, nil
}

func (d *DefaultRepo) InsertBan(ctx context.Context, userID int64) error {
	query, args, err := d.sb.
		Insert("banned_users").
		Columns("user_id").
		Values(userID).
		Suffix("on conflict (user_id) do nothing").
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{Cause: "failed to build insert ban query", Err: err}
	}

	if _, err := d.pool.Exec(ctx, query, args...); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to insert ban",
			Info:  fmt.Sprintf("userID: %d", userID),
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) DeleteBan(ctx context.Context, userID int64) error {
	query, args, err := d.sb.
		Delete("banned_users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{Cause: "failed to build delete ban query", Err: err}
	}

	if _, err := d.pool.Exec(ctx, query, args...); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to delete ban",
			Info:  fmt.Sprintf("userID: %d", userID),
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) BanExists(ctx context.Context, userID int64) (bool, error) {
	query, args, err := d.sb.
		Select("1").
		From("banned_users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return false, &pkg.ErrDBProcedure{Cause: "failed to build select ban query", Err: err}
	}

	var one int
	if err := d.pool.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, &pkg.ErrDBProcedure{
			Cause: "failed to select ban",
			Info:  fmt.Sprintf("userID: %d", userID),
			Err:   err,
		}
	}
	return true, nil
}
