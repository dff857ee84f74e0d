package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/json_types"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/out"
)

// BookingNotifier publishes booking confirmations to a topic exchange so
// downstream consumers (confirmation email, storefront dashboard) can react.
// Delivery is best effort; the booking itself is already committed.
type BookingNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     *config.Config
	logger  out.LoggerPort
}

type bookingCreatedMessage struct {
	BookingID uuid.UUID            `json:"bookingId"`
	EventID   string               `json:"eventId"`
	Name      string               `json:"name"`
	Phone     string               `json:"phone"`
	Email     string               `json:"email"`
	Service   string               `json:"service"`
	Date      json_types.Date      `json:"date"`
	Time      json_types.ClockTime `json:"time"`
	StartTime json_types.DateTime  `json:"begin"`
	EndTime   json_types.DateTime  `json:"end"`
}

func NewBookingNotifier(cfg *config.Config, logger out.LoggerPort) (*BookingNotifier, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, notifier will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	if err := channel.ExchangeDeclare(
		cfg.RabbitMQ.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	); err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.exchange.declare_failed", out.LogFields{
			"error":    err.Error(),
			"exchange": cfg.RabbitMQ.Exchange,
		})
		return nil, err
	}

	return &BookingNotifier{
		conn:    conn,
		channel: channel,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (n *BookingNotifier) NotifyBooked(ctx context.Context, notification domain.BookingNotification) error {
	message := bookingCreatedMessage{
		BookingID: notification.BookingID,
		EventID:   notification.EventID,
		Name:      notification.Name,
		Phone:     notification.Phone,
		Email:     notification.Email,
		Service:   notification.Service,
		Date:      json_types.Date{Date: notification.StartTime},
		Time:      json_types.ClockTime{Time: notification.StartTime},
		StartTime: json_types.DateTime{Date: notification.StartTime},
		EndTime:   json_types.DateTime{Date: notification.EndTime},
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	err = n.channel.PublishWithContext(ctx,
		n.cfg.RabbitMQ.Exchange,
		n.cfg.RabbitMQ.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   notification.BookingID.String(),
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		return err
	}

	n.logger.Debug("rabbitmq.notify.published", out.LogFields{
		"bookingId":  notification.BookingID,
		"routingKey": n.cfg.RabbitMQ.RoutingKey,
	})

	return nil
}

func (n *BookingNotifier) Stop() error {
	if n == nil || n.channel == nil {
		return nil
	}

	if err := n.channel.Close(); err != nil {
		return err
	}
	return n.conn.Close()
}
