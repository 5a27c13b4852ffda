package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Nestling.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

const (
	behaviorExchange = "behavior_exchange"
	viewQueue        = "view_events"
	shareQueue       = "share_events"
)

// BehaviorMQManager 浏览和分享走异步通道，不阻塞请求路径
type BehaviorMQManager struct {
	conn           *amqp091.Connection
	channel        *amqp091.Channel
	publishTimeout time.Duration
}

var Manager *BehaviorMQManager

func InitMq() error {
	url := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password,
		config.ConfigInfo.RabbitMq.Addr)
	m, err := NewBehaviorMQManager(url)
	if err != nil {
		return err
	}
	Manager = m
	return nil
}

func NewBehaviorMQManager(rabbitmqURL string) (*BehaviorMQManager, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	manager := &BehaviorMQManager{
		conn:           conn,
		channel:        ch,
		publishTimeout: 30 * time.Second,
	}

	if err := manager.setupQueuesAndExchanges(); err != nil {
		manager.Close()
		return nil, fmt.Errorf("failed to setup queues and exchanges: %w", err)
	}
	return manager, nil
}

func (m *BehaviorMQManager) setupQueuesAndExchanges() error {
	err := m.channel.ExchangeDeclare(
		behaviorExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	queues := []struct {
		name       string
		routingKey string
	}{
		{viewQueue, "behavior.view"},
		{shareQueue, "behavior.share"},
	}
	for _, q := range queues {
		_, err := m.channel.QueueDeclare(
			q.name,
			true,
			false,
			false,
			false,
			amqp091.Table{
				"x-message-ttl": int32(24 * 60 * 60 * 1000),
				"x-max-length":  int32(1000000),
			},
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", q.name, err)
		}
		if err = m.channel.QueueBind(q.name, q.routingKey, behaviorExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", q.name, err)
		}
	}
	return nil
}

func (m *BehaviorMQManager) publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.publishTimeout)
	defer cancel()

	err = m.channel.PublishWithContext(ctx,
		behaviorExchange,
		routingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (m *BehaviorMQManager) PublishViewEvent(ctx context.Context, event *ViewEvent) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	return m.publish(ctx, "behavior.view", event)
}

func (m *BehaviorMQManager) PublishShareEvent(ctx context.Context, event *ShareEvent) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	return m.publish(ctx, "behavior.share", event)
}

func (m *BehaviorMQManager) Close() {
	if m.channel != nil {
		if err := m.channel.Close(); err != nil {
			hlog.Warnf("close channel failed: %v", err)
		}
	}
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			hlog.Warnf("close connection failed: %v", err)
		}
	}
}
