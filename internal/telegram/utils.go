package telegram

import (
	"fmt"
	"regexp"
)

var teraLinkRe = regexp.MustCompile(`^https?://\S*tera`)

func MatchesTeraLink(text string) bool {
	return teraLinkRe.MatchString(text)
}

func Mention(userID int64, firstName string) string {
	return fmt.Sprintf("<a href='tg://user?id=%d'>%s</a>", userID, firstName)
}
