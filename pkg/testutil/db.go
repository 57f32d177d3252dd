package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tripal/tripal-blast/pkg/common/uuid"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/repo/migrate"
)

// NewDatastore opens a private in-memory sqlite database with the schema migrated
// and the admin account installed.
func NewDatastore(t testing.TB) *db.Datastore {
	t.Helper()

	ds, err := db.Open(&db.Config{
		Driver: "sqlite",
		DBName: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewV4()),
	})
	require.NoError(t, err)

	sqlDB, err := ds.DBIns().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrate.Table(context.Background(), ds))
	t.Cleanup(func() { _ = ds.Close() })
	return ds
}
