package telegram

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"terabox-dl-bot/internal/fetcher"
	"terabox-dl-bot/internal/telegram/internal/presentation"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gosimple/slug"
)

// handleLink is the default handler: every non-command text message is
// treated as a potential TeraBox link.
func (b *Bot) handleLink(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	from := update.Message.From
	chatID := update.Message.Chat.ID

	b.sendTyping(ctx, chatID)

	banned, err := b.userService.IsBanned(ctx, from.ID)
	if err == nil && banned {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.BannedMsg(),
		})
		return
	}

	if !b.isMember(ctx, from.ID) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        presentation.JoinRequiredMsg(),
			ReplyMarkup: presentation.JoinKbd(b.cfg.ChannelURL),
		})
		return
	}

	if !MatchesTeraLink(update.Message.Text) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.InvalidLinkMsg(),
		})
		return
	}

	b.runTransfer(ctx, update.Message.Text, chatID, update.Message.ID, from)
}

// runTransfer drives one resolve-and-download cycle. The status message sent
// at the start is the only message ever updated with progress.
func (b *Bot) runTransfer(ctx context.Context, sourceURL string, chatID int64, originalMsgID int, from *models.User) {
	statusMsgID := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   presentation.DownloadingMsg(),
	})
	if statusMsgID == 0 {
		return
	}

	link, err := b.fetcherService.Resolve(ctx, sourceURL)
	if err != nil {
		slog.Error("Link resolution failed", "error", err, "userID", from.ID)
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: statusMsgID,
			Text:      presentation.DownloadFailedMsg(err),
		})
		return
	}

	req := fetcher.TransferRequest{
		SourceURL:       link.URL,
		DestinationPath: filepath.Join(b.videosDir, slug.Make(link.Title)+".mp4"),
		DisplayName:     link.Title,
	}
	mention := Mention(from.ID, from.FirstName)

	onProgress := func(p fetcher.TransferProgress) error {
		_, editErr := b.api.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: statusMsgID,
			Text:      presentation.ProgressMsg(link.Title, p, mention, from.ID),
			ParseMode: models.ParseModeHTML,
		})
		return editErr
	}

	result, err := b.fetcherService.Stream(ctx, req, onProgress)
	if err != nil {
		slog.Error("Video download failed", "error", err, "userID", from.ID, "title", link.Title)
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: statusMsgID,
			Text:      presentation.DownloadFailedMsg(err),
		})
		b.removeFile(req.DestinationPath)
		return
	}

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: statusMsgID,
		Text:      presentation.SendingMsg(),
	})

	if err := b.republish(ctx, chatID, result, mention, from.ID); err != nil {
		slog.Error("Failed to republish video", "error", err, "userID", from.ID, "title", result.DisplayName)
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: statusMsgID,
			Text:      presentation.DownloadFailedMsg(err),
		})
		b.removeFile(result.LocalPath)
		return
	}

	if b.cfg.StickerID != "" {
		if _, err := b.api.SendSticker(ctx, &bot.SendStickerParams{
			ChatID:  chatID,
			Sticker: &models.InputFileString{Data: b.cfg.StickerID},
		}); err != nil {
			slog.Error(err.Error())
		}
	}

	if err := b.userService.IncrementDownloads(ctx, from.ID); err != nil {
		slog.Error("Failed to update download count", "error", err, "userID", from.ID)
	}

	b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chatID, MessageID: statusMsgID})
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chatID, MessageID: originalMsgID})
	b.removeFile(result.LocalPath)

	slog.Info("Successfully downloaded video", "title", result.DisplayName, "bytes", result.TotalBytes, "userID", from.ID)
}

// republish uploads the file to the dump channel and copies it back to the
// requesting chat, so the archive copy is the upload of record.
func (b *Bot) republish(ctx context.Context, chatID int64, result *fetcher.TransferResult, mention string, userID int64) error {
	video, err := os.Open(result.LocalPath)
	if err != nil {
		return err
	}
	defer video.Close()

	dumpMsg, err := b.api.SendVideo(ctx, &bot.SendVideoParams{
		ChatID:    b.cfg.DumpChatID,
		Video:     &models.InputFileUpload{Filename: filepath.Base(result.LocalPath), Data: video},
		Caption:   presentation.VideoCaptionMsg(result.DisplayName, result.TotalBytes, mention, userID),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return err
	}

	_, err = b.api.CopyMessage(ctx, &bot.CopyMessageParams{
		ChatID:     chatID,
		FromChatID: b.cfg.DumpChatID,
		MessageID:  dumpMsg.ID,
	})
	return err
}

func (b *Bot) removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Error("Failed to remove local file", "error", err, "path", path)
	}
}
