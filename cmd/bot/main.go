package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"journey_compass/internal/config"
	"journey_compass/internal/logger"
	"journey_compass/internal/models"
	"journey_compass/internal/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

func main() {
	logger.Setup()
	config.InitDB()

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatalf("bot init failed: %v", err)
	}
	log.Printf("Bot started as %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID

		switch msg.Command() {
		case "start":
			reply := tgbotapi.NewMessage(chatID,
				"Welcome to Journey Compass!\n\n"+
					"/top — the three best-rated routes\n"+
					"/search <text> — find routes by title or description\n"+
					"/route <id> — route details")
			bot.Send(reply)

		case "top":
			details := publicRouteViews(config.DB)
			details = views.SortBy(details, views.SortRating)
			if len(details) > 3 {
				details = details[:3]
			}
			if len(details) == 0 {
				bot.Send(tgbotapi.NewMessage(chatID, "No routes yet."))
				continue
			}
			var b strings.Builder
			b.WriteString("<b>Top routes</b>\n\n")
			for _, d := range details {
				b.WriteString(formatRouteLine(d))
			}
			sendHTML(bot, chatID, b.String())

		case "search":
			query := strings.TrimSpace(msg.CommandArguments())
			if query == "" {
				bot.Send(tgbotapi.NewMessage(chatID, "Usage: /search <text>"))
				continue
			}
			details := publicRouteViews(config.DB)
			details = views.Apply(details, views.Filter{SearchQuery: query})
			if len(details) > 5 {
				details = details[:5]
			}
			if len(details) == 0 {
				bot.Send(tgbotapi.NewMessage(chatID, "Nothing found for \""+query+"\"."))
				continue
			}
			var b strings.Builder
			fmt.Fprintf(&b, "<b>Routes matching %q</b>\n\n", query)
			for _, d := range details {
				b.WriteString(formatRouteLine(d))
			}
			sendHTML(bot, chatID, b.String())

		case "route":
			id, err := strconv.ParseUint(strings.TrimSpace(msg.CommandArguments()), 10, 64)
			if err != nil {
				bot.Send(tgbotapi.NewMessage(chatID, "Usage: /route <id>"))
				continue
			}
			var route models.Route
			err = config.DB.
				Preload("Categories").Preload("Creator").Preload("Reviews").Preload("Images").
				Preload("Points", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order ASC") }).
				Preload("Points.Point").
				Where("is_public = ?", true).
				First(&route, id).Error
			if err != nil {
				bot.Send(tgbotapi.NewMessage(chatID, "Route not found."))
				continue
			}
			sendHTML(bot, chatID, formatRouteDetail(views.Assemble(route, false)))

		default:
			bot.Send(tgbotapi.NewMessage(chatID, "Unknown command. Try /start."))
		}
	}
}

// publicRouteViews loads every public route with its associations and
// assembles the anonymous view of each.
func publicRouteViews(db *gorm.DB) []views.RouteDetails {
	var routes []models.Route
	if err := db.
		Preload("Categories").Preload("Creator").Preload("Reviews").Preload("Images").
		Where("is_public = ?", true).
		Find(&routes).Error; err != nil {
		log.Printf("route fetch failed: %v", err)
		return nil
	}
	details := make([]views.RouteDetails, 0, len(routes))
	for _, r := range routes {
		details = append(details, views.Assemble(r, false))
	}
	return details
}

func formatRouteLine(d views.RouteDetails) string {
	difficulty := "—"
	if d.DifficultyLevel != nil {
		difficulty = *d.DifficultyLevel
	}
	return fmt.Sprintf("<b>%s</b> (#%d)\n⭐ %.1f (%d reviews) · %d days · %s\n\n",
		d.Title, d.ID, d.Rating, d.ReviewCount, d.Duration, difficulty)
}

func formatRouteDetail(d views.RouteDetails) string {
	var b strings.Builder
	b.WriteString(formatRouteLine(d))
	b.WriteString(d.Description + "\n")
	if len(d.Categories) > 0 {
		names := make([]string, 0, len(d.Categories))
		for _, c := range d.Categories {
			names = append(names, c.Name)
		}
		b.WriteString("\nCategories: " + strings.Join(names, ", ") + "\n")
	}
	if len(d.Points) > 0 {
		b.WriteString("\n<b>Itinerary</b>\n")
		for _, p := range d.Points {
			fmt.Fprintf(&b, "%d. %s\n", p.SequenceOrder, p.Name)
		}
	}
	b.WriteString("\nBy " + d.Creator.Username)
	return b.String()
}

func sendHTML(bot *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(msg); err != nil {
		log.Printf("send failed: %v", err)
	}
}
