package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, owner *domain.User, booking *domain.Booking, car *domain.Car) {
	n.send(ctx, owner.TelegramChatID, bookingCreatedText(booking, car))
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, renter *domain.User, booking *domain.Booking, car *domain.Car) {
	n.send(ctx, renter.TelegramChatID, statusChangedText(booking, car))
}

func (n *TelegramNotifier) NotifyPendingReminder(ctx context.Context, owner *domain.User, booking *domain.Booking, car *domain.Car) {
	n.send(ctx, owner.TelegramChatID, pendingReminderText(booking, car))
}

func bookingCreatedText(b *domain.Booking, car *domain.Car) string {
	return fmt.Sprintf(
		"*New booking request*\n\n"+"Car: %s %s\n"+"Dates: %s - %s\n"+"Price: %.2f",
		car.Brand, car.Model,
		b.PickupDate.Format(dateLayout), b.ReturnDate.Format(dateLayout),
		b.Price,
	)
}

func statusChangedText(b *domain.Booking, car *domain.Car) string {
	return fmt.Sprintf(
		"*Booking %s*\n\n"+"Car: %s %s\n"+"Dates: %s - %s",
		b.Status, car.Brand, car.Model,
		b.PickupDate.Format(dateLayout), b.ReturnDate.Format(dateLayout),
	)
}

func pendingReminderText(b *domain.Booking, car *domain.Car) string {
	return fmt.Sprintf(
		"*Booking still pending*\n\n"+"Car: %s %s\n"+"Pickup: %s\n"+"Confirm or cancel it in your dashboard.",
		car.Brand, car.Model,
		b.PickupDate.Format(dateLayout),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
