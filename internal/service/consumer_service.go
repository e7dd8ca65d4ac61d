// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bytemart-search-be/internal/dto"
	"bytemart-search-be/pkg/prefs"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains turn-activity messages off the in-process bus and
// appends them to the per-user history that preference queries read from.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	history   *prefs.History
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	history *prefs.History,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		history:   history,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.TurnActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.UserId == "" || payload.Query == "" {
		msg.Ack() // Anonymous turns carry no preference signal
		return
	}

	entry := fmt.Sprintf("searched %q (%d results)", payload.Query, payload.Results)
	if payload.Reset {
		entry = "started new search: " + entry
	}
	cs.history.Append(ctx, payload.UserId, entry)

	msg.Ack()
}
