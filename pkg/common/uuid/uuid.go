package uuid

import "github.com/gofrs/uuid/v5"

type UUID = uuid.UUID

func NewV4() UUID {
	return uuid.Must(uuid.NewV4())
}
