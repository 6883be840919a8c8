package presentation

import (
	"fmt"
	"strings"

	"terabox-dl-bot/internal/fetcher"
)

func WelcomeMsg(userID int64, firstName string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Welcome, <a href='tg://user?id=%d'>%s</a>.", userID, firstName))
	sb.WriteString(breakLine(2))
	sb.WriteString("🔄 I am a TeraBox downloader bot.")
	sb.WriteString(breakLine(1))
	sb.WriteString("Send me any TeraBox link and I will download the video and send it to you ✨")
	return sb.String()
}

func JoinRequiredMsg() string {
	return "You must join my channel to use me."
}

func BannedMsg() string {
	return "You are banned from using this bot."
}

func InvalidLinkMsg() string {
	return "Please send a valid TeraBox link."
}

func DownloadingMsg() string {
	return "⎋ Downloading your video..."
}

func SendingMsg() string {
	return "Sending you the media...🤤"
}

func DownloadFailedMsg(err error) string {
	return fmt.Sprintf("Download failed: %s", err)
}

func GenericErrorMsg() string {
	return "❌ Something went wrong, please try again later"
}

func BanUsageMsg() string {
	return "Usage: /ban <user_id> or /unban <user_id>"
}

func BanResultMsg(userID int64, banned bool) string {
	if banned {
		return fmt.Sprintf("User %d is now banned", userID)
	}
	return fmt.Sprintf("User %d is no longer banned", userID)
}

func StatsMsg(users int) string {
	return fmt.Sprintf("👥 Total users: <b>%d</b>", users)
}

// ProgressMsg renders the progress card that is edited in place while a
// transfer runs.
func ProgressMsg(filename string, progress fetcher.TransferProgress, mention string, userID int64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("┏ FileName: <b>%s</b>", filename))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("┠ [%s] %.2f%%", progressBar(progress.Percent), progress.Percent))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("┠ Processed: %s of %s", FormatSize(progress.BytesDone), FormatSize(progress.BytesTotal)))
	sb.WriteString(breakLine(1))
	sb.WriteString("┠ Status: <b>Downloading</b>")
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("┠ Speed: <b>%s/s</b>", FormatSize(int64(progress.BytesPerSec))))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("┖ User: %s | ID: <code>%d</code>", mention, userID))
	return sb.String()
}

func VideoCaptionMsg(title string, totalBytes int64, mention string, userID int64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📂 %s", title))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("📦 %.2f MB", float64(totalBytes)/(1024*1024)))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("🪪 Requested by: %s", mention))
	sb.WriteString(breakLine(1))
	sb.WriteString(fmt.Sprintf("♂️ User link: tg://user?id=%d", userID))
	return sb.String()
}

func breakLine(n int) string {
	return strings.Repeat("\n", n)
}
