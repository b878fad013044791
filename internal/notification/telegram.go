package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

// TelegramNotifier fans booking lifecycle events out to the parties that
// linked a Telegram chat. Delivery is best effort; the lifecycle never waits
// on it.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	contacts ports.ContactRepo
	logger   logger.Logger
}

func NewTelegramNotifier(token string, contacts ports.ContactRepo, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, contacts: contacts, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, contacts: contacts, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyLessonBooked(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Aula solicitada!*\n\nData: %s às %s\nConclua o pagamento para confirmar a aula.",
		b.ScheduledDate, b.ScheduledTime,
	)
	n.send(ctx, b.StudentID, text)
}

func (n *TelegramNotifier) NotifyLessonConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Aula confirmada!*\n\nData: %s às %s\nDuração: %d min",
		b.ScheduledDate, b.ScheduledTime, b.DurationMinutes,
	)
	n.send(ctx, b.StudentID, text)
	n.send(ctx, b.InstructorID, text)
}

func (n *TelegramNotifier) NotifyLessonCompleted(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Aula concluída!*\n\nData: %s às %s\nO repasse ao instrutor foi registrado.",
		b.ScheduledDate, b.ScheduledTime,
	)
	n.send(ctx, b.StudentID, text)
	n.send(ctx, b.InstructorID, text)
}

func (n *TelegramNotifier) NotifyLessonCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Aula cancelada*\n\nData: %s às %s",
		b.ScheduledDate, b.ScheduledTime,
	)
	n.send(ctx, b.StudentID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, userID, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("user_id", userID),
		)
		return
	}

	chatID, err := n.contacts.TelegramChatID(ctx, userID)
	if err != nil {
		n.logger.Error("failed to resolve notification contact",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}
	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("user_id", userID))
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
