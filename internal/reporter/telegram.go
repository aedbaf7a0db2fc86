package reporter

import (
	"fmt"
	"html"

	"go-jobscout/internal/config"
	"go-jobscout/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendPosting(p scraper.Posting) error {
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"🔖 %s\n"+
			"🔗 <a href=\"%s\">View Job</a>",
		html.EscapeString(p.Title),
		html.EscapeString(p.Company),
		html.EscapeString(p.Location),
		p.Site,
		p.Link,
	)
	return t.SendMessage(text)
}

// SendSummary reports how a scrape run went and where its snapshot landed.
func (t *TelegramReporter) SendSummary(total int, path string) error {
	text := fmt.Sprintf("ℹ️ Scraped <b>%d</b> job postings.\nSaved to %s", total, html.EscapeString(path))
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>JobScout Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
