package presentation

import "github.com/go-telegram/bot/models"

func WelcomeKbd(channelURL, ownerURL string) *models.InlineKeyboardMarkup {
	row := []models.InlineKeyboardButton{
		{Text: "〇 Join Channel 〇", URL: channelURL},
	}
	if ownerURL != "" {
		row = append(row, models.InlineKeyboardButton{Text: "🫧 Owner 🫧", URL: ownerURL})
	}
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{row},
	}
}

func JoinKbd(channelURL string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "〇 Join Channel 〇", URL: channelURL}},
		},
	}
}
