package notify

import (
	"context"

	"github.com/tripal/tripal-blast/pkg/common/uuid"
)

type Action string

const (
	BlastDBCreated Action = "blastdb-created"
	BlastDBDeleted Action = "blastdb-deleted"
)

// Channel is the pub/sub channel content events are published on.
const Channel = "blastdb-modify"

type SendMsg struct {
	Action    Action    `json:"action"`
	NodeID    int64     `json:"nid"`
	NodeUUID  uuid.UUID `json:"node_uuid"`
	UserID    int64     `json:"uid"`
	UUID      uuid.UUID `json:"uuid"`
	Timestamp int64     `json:"timestamp"`
}

type MsgCenter interface {
	Broadcast(ctx context.Context, msg *SendMsg) error
}
