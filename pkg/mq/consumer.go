package mq

import (
	"context"
	"encoding/json"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

// BehaviorHandler 消费端回调，由调用方落库
type BehaviorHandler interface {
	HandleView(ctx context.Context, event *ViewEvent) error
	HandleShare(ctx context.Context, event *ShareEvent) error
}

// StartConsumers 为每个队列起一个消费循环，ctx取消时退出
func (m *BehaviorMQManager) StartConsumers(ctx context.Context, handler BehaviorHandler) error {
	viewMsgs, err := m.channel.Consume(viewQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	shareMsgs, err := m.channel.Consume(shareQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go m.consumeViews(ctx, viewMsgs, handler)
	go m.consumeShares(ctx, shareMsgs, handler)
	return nil
}

func (m *BehaviorMQManager) consumeViews(ctx context.Context, msgs <-chan amqp091.Delivery, handler BehaviorHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			var event ViewEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				hlog.Errorf("unmarshal view event failed: %v", err)
				d.Nack(false, false)
				continue
			}
			if err := handler.HandleView(ctx, &event); err != nil {
				hlog.Errorf("handle view event failed: %v", err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

func (m *BehaviorMQManager) consumeShares(ctx context.Context, msgs <-chan amqp091.Delivery, handler BehaviorHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			var event ShareEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				hlog.Errorf("unmarshal share event failed: %v", err)
				d.Nack(false, false)
				continue
			}
			if err := handler.HandleShare(ctx, &event); err != nil {
				hlog.Errorf("handle share event failed: %v", err)
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}
