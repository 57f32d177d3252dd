package events

import (
	"context"
	"testing"
	"time"

	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/core/notify"
)

func TestBroadcastUnreachableRedis(t *testing.T) {
	client := r.NewClient(&r.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	msg := &notify.SendMsg{Action: notify.BlastDBCreated, NodeID: 3}
	err := NewEvents(client).Broadcast(context.Background(), msg)

	assert.ErrorIs(t, err, code.NotifySendMsgErr)
	assert.False(t, msg.UUID.IsNil())
	assert.NotZero(t, msg.Timestamp)
}
