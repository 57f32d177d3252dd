package migrate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripal/tripal-blast/pkg/common"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

func TestTableInstallsAdminOnce(t *testing.T) {
	ctx := context.Background()
	ds, err := db.Open(&db.Config{Driver: "sqlite", DBName: "file:migrate_test?mode=memory&cache=shared"})
	require.NoError(t, err)
	defer ds.Close()

	require.NoError(t, Table(ctx, ds))
	require.NoError(t, Table(ctx, ds))

	var users []*model.User
	require.NoError(t, ds.DBWithContext(ctx).Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, model.AdminUID, users[0].ID)
	assert.Equal(t, common.SuperAdmin, users[0].Role)
	assert.True(t, users[0].Status)
}
