package user

import (
	"context"
	"log/slog"
)

type Service interface {
	Register(ctx context.Context, userID int64, firstName string) error
	IsBanned(ctx context.Context, userID int64) (bool, error)
	Ban(ctx context.Context, userID int64) error
	Unban(ctx context.Context, userID int64) error
	IncrementDownloads(ctx context.Context, userID int64) error
	Count(ctx context.Context) (int, error)
}

type DefaultService struct {
	repo Repo
}

func NewDefaultService(repo Repo) Service {
	return &DefaultService{
		repo: repo,
	}
}

func (d *DefaultService) Register(ctx context.Context, userID int64, firstName string) error {
	existing, err := d.repo.GetUser(ctx, userID)
	if err != nil {
		slog.Error("Failed to look up user", "error", err, "userID", userID)
		return err
	}
	if existing != nil {
		return nil
	}

	if err := d.repo.InsertUser(ctx, DBUser{UserID: userID, FirstName: firstName}); err != nil {
		slog.Error("Failed to register user", "error", err, "userID", userID)
		return err
	}
	return nil
}

func (d *DefaultService) IsBanned(ctx context.Context, userID int64) (bool, error) {
	banned, err := d.repo.BanExists(ctx, userID)
	if err != nil {
		slog.Error("Failed to check ban status", "error", err, "userID", userID)
		return false, err
	}
	return banned, nil
}

func (d *DefaultService) Ban(ctx context.Context, userID int64) error {
	if err := d.repo.InsertBan(ctx, userID); err != nil {
		slog.Error("Failed to ban user", "error", err, "userID", userID)
		return err
	}
	return nil
}

func (d *DefaultService) Unban(ctx context.Context, userID int64) error {
	if err := d.repo.DeleteBan(ctx, userID); err != nil {
		slog.Error("Failed to unban user", "error", err, "userID", userID)
		return err
	}
	return nil
}

func (d *DefaultService) IncrementDownloads(ctx context.Context, userID int64) error {
	if err := d.repo.IncrementDownloads(ctx, userID); err != nil {
		slog.Error("Failed to increment downloads", "error", err, "userID", userID)
		return err
	}
	return nil
}

func (d *DefaultService) Count(ctx context.Context) (int, error) {
	count, err := d.repo.CountUsers(ctx)
	if err != nil {
		slog.Error("Failed to count users", "error", err)
		return 0, err
	}
	return count, nil
}
