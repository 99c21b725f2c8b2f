package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vitaliksorokov/pump-short-bot/internal/menu"
)

// Transport-level texts. Screen texts live with the menu package.
const (
	statusPrefix        = "📌 "
	saveFailedText      = "⚠️ Не удалось сохранить настройки."
	tooManyRequestsText = "Слишком много запросов, попробуй позже."
	statsHeaderFmt      = "📊 Статистика сигналов.\nВсего отправлено: %d\n\nПоследние:\n"
	statsEmptyText      = "📊 Сигналов пока не было."
	statsFailedText     = "⚠️ Не удалось загрузить статистику."
)

// inlineMarkup converts screen button rows into a Telegram inline keyboard.
func inlineMarkup(rows [][]menu.Button) tgbotapi.InlineKeyboardMarkup {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		kbRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			kbRow = append(kbRow, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Token))
		}
		kbRows = append(kbRows, kbRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...)
}
