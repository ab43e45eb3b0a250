package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts order lifecycle events to an ops channel.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || opsChatID == 0 {
		logger.Warn("telegram bot token or ops chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOrderCreated(ctx context.Context, order *domain.Order) {
	text := fmt.Sprintf(
		"*New hold*\nOrder: %s\nTickets: %d\nTotal: %s\nExpires: %s UTC",
		order.ID, len(order.Tickets), order.Total.String(),
		order.HoldExpiresAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrderPaid(ctx context.Context, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order paid*\nOrder: %s\nTickets: %d\nTotal: %s",
		order.ID, len(order.Tickets), order.Total.String(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrderCancelled(ctx context.Context, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order cancelled*\nOrder: %s\nTickets released: %d",
		order.ID, len(order.Tickets),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrdersExpired(ctx context.Context, orderIDs []string) {
	text := fmt.Sprintf(
		"*Holds expired*\nCount: %d\nOrders: %s",
		len(orderIDs), strings.Join(orderIDs, ", "),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	select {
	case <-ctx.Done():
		return
	default:
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
