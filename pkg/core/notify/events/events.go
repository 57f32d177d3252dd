package events

import (
	"context"
	"encoding/json"
	"time"

	r "github.com/redis/go-redis/v9"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/common/uuid"
	"github.com/tripal/tripal-blast/pkg/core/notify"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
)

// Events broadcasts content events to other processes over redis pub/sub.
type Events struct {
	client *r.Client
}

func NewEvents(client *r.Client) notify.MsgCenter {
	return &Events{client: client}
}

func (e *Events) Broadcast(ctx context.Context, msg *notify.SendMsg) error {
	msg.Timestamp = time.Now().Unix()
	if msg.UUID.IsNil() {
		msg.UUID = uuid.NewV4()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return code.NotifySendMsgErr.WithErr(err)
	}
	if err := e.client.Publish(ctx, notify.Channel, data).Err(); err != nil {
		logger.Errorf(ctx, "send msg fail action: %s, err: %+v", msg.Action, err)
		return code.NotifySendMsgErr.WithErr(err)
	}
	return nil
}
