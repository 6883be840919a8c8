package telegram

import (
	"context"
	"log/slog"

	"terabox-dl-bot/internal/telegram/internal/presentation"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (b *Bot) handleStartCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	from := update.Message.From
	chatID := update.Message.Chat.ID

	b.sendTyping(ctx, chatID)

	if err := b.userService.Register(ctx, from.ID, from.FirstName); err != nil {
		slog.Error("Failed to register user on /start", "error", err, "userID", from.ID)
	}

	_, err := api.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileString{Data: b.cfg.WelcomePhotoURL},
		Caption:     presentation.WelcomeMsg(from.ID, from.FirstName),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: presentation.WelcomeKbd(b.cfg.ChannelURL, b.cfg.OwnerURL),
	})
	if err != nil {
		slog.Error("Failed to send welcome message", "error", err, "userID", from.ID)
	}
}
