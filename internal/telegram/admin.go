package telegram

import (
	"context"
	"strconv"
	"strings"

	"terabox-dl-bot/internal/telegram/internal/presentation"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (b *Bot) handleBanCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	b.handleBanToggleCmd(ctx, update, true)
}

func (b *Bot) handleUnbanCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	b.handleBanToggleCmd(ctx, update, false)
}

func (b *Bot) handleBanToggleCmd(ctx context.Context, update *models.Update, ban bool) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !b.isAdmin(update.Message.From.ID) {
		return
	}

	targetID, err := parseCommandArg(update.Message.Text)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.BanUsageMsg(),
		})
		return
	}

	if ban {
		err = b.userService.Ban(ctx, targetID)
	} else {
		err = b.userService.Unban(ctx, targetID)
	}
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.GenericErrorMsg(),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   presentation.BanResultMsg(targetID, ban),
	})
}

func (b *Bot) handleStatsCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !b.isAdmin(update.Message.From.ID) {
		return
	}

	count, err := b.userService.Count(ctx)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   presentation.GenericErrorMsg(),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      presentation.StatsMsg(count),
		ParseMode: models.ParseModeHTML,
	})
}

func parseCommandArg(text string) (int64, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(fields[1], 10, 64)
}
