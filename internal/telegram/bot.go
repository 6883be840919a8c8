package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"terabox-dl-bot/internal/fetcher"
	"terabox-dl-bot/internal/pkg/config"
	"terabox-dl-bot/internal/user"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Bot struct {
	userService    user.Service
	fetcherService fetcher.Service
	api            *bot.Bot
	cfg            *config.TelegramCfg
	videosDir      string
}

func NewBot(userService user.Service, fetcherService fetcher.Service, cfg *config.TelegramCfg, videosDir string) (*Bot, error) {
	b := &Bot{
		userService:    userService,
		fetcherService: fetcherService,
		cfg:            cfg,
		videosDir:      videosDir,
	}

	botOpts := []bot.Option{bot.WithDefaultHandler(b.handleLink)}
	api, err := bot.New(cfg.Token, botOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot instance: %w", err)
	}
	b.api = api

	return b, nil
}

func (b *Bot) Start(ctx context.Context) {
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "start", bot.MatchTypeCommandStartOnly, b.handleStartCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "ban", bot.MatchTypeCommandStartOnly, b.handleBanCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "unban", bot.MatchTypeCommandStartOnly, b.handleUnbanCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "stats", bot.MatchTypeCommandStartOnly, b.handleStatsCmd)

	slog.Info("Started Telegram Bot")
	go b.api.Start(ctx)
}

func (b *Bot) SendMessage(ctx context.Context, params *bot.SendMessageParams) int {
	msg, err := b.api.SendMessage(ctx, params)
	if err != nil {
		slog.Error("Error sending message", "error", err, "params", params)
		return 0
	}
	return msg.ID
}

func (b *Bot) EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) {
	if _, err := b.api.EditMessageText(ctx, params); err != nil {
		slog.Error(err.Error())
	}
}

func (b *Bot) DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) {
	if _, err := b.api.DeleteMessage(ctx, params); err != nil {
		slog.Error(err.Error())
	}
}

func (b *Bot) sendTyping(ctx context.Context, chatID int64) {
	_, err := b.api.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	if err != nil {
		slog.Error(err.Error())
	}
}

// isMember treats a failed lookup as not a member.
func (b *Bot) isMember(ctx context.Context, userID int64) bool {
	member, err := b.api.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: b.cfg.RequiredChannelID,
		UserID: userID,
	})
	if err != nil {
		slog.Warn("Membership check failed", "error", err, "userID", userID)
		return false
	}

	switch member.Type {
	case models.ChatMemberTypeMember, models.ChatMemberTypeAdministrator, models.ChatMemberTypeOwner:
		return true
	default:
		return false
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	for _, id := range b.cfg.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
