package node

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/repo"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	"github.com/tripal/tripal-blast/pkg/testutil"
)

func newNode(title string, dbType model.DBType) *model.Node {
	return &model.Node{
		Type:     model.BlastDBNodeType,
		Title:    title,
		Language: model.LanguageNone,
		UID:      model.AdminUID,
		Status:   true,
		BlastDB: &model.BlastDB{
			Name:        title,
			Path:        "/data/" + title,
			DBType:      dbType,
			LinkoutType: model.LinkoutNone,
		},
	}
}

func TestCreateAndGetNode(t *testing.T) {
	ctx := context.Background()
	store := New(testutil.NewDatastore(t))

	node := newNode("genome", model.DBTypeNucleotide)
	require.NoError(t, store.CreateNode(ctx, node))
	assert.NotZero(t, node.ID)
	assert.Equal(t, node.ID, node.BlastDB.NID)
	assert.False(t, node.UUID.IsNil())

	got, err := store.GetNode(ctx, node.ID)
	require.NoError(t, err)
	assert.Equal(t, node.UUID, got.UUID)
	assert.Equal(t, "genome", got.Title)
	require.NotNil(t, got.BlastDB)
	assert.Equal(t, "/data/genome", got.BlastDB.Path)
	assert.Nil(t, got.BlastDB.LinkoutDBID)
}

func TestGetNodeMissing(t *testing.T) {
	_, err := New(testutil.NewDatastore(t)).GetNode(context.Background(), 1)
	assert.ErrorIs(t, err, code.RecordNotFound)
}

func TestListNodesPaging(t *testing.T) {
	ctx := context.Background()
	store := New(testutil.NewDatastore(t))
	for i := 0; i < 5; i++ {
		dbType := model.DBTypeNucleotide
		if i%2 == 1 {
			dbType = model.DBTypeProtein
		}
		require.NoError(t, store.CreateNode(ctx, newNode(fmt.Sprintf("db%d", i), dbType)))
	}

	page, total, err := store.ListNodes(ctx, repo.NodeQuery{Type: model.BlastDBNodeType, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "db2", page[0].Title)
	assert.Equal(t, "db1", page[1].Title)
	assert.NotNil(t, page[0].BlastDB)

	protein := model.DBTypeProtein
	proteins, total, err := store.ListNodes(ctx, repo.NodeQuery{Type: model.BlastDBNodeType, DBType: &protein})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, proteins, 2)
}

func TestDeleteNode(t *testing.T) {
	ctx := context.Background()
	store := New(testutil.NewDatastore(t))
	node := newNode("genome", model.DBTypeNucleotide)
	require.NoError(t, store.CreateNode(ctx, node))

	require.NoError(t, store.DeleteNode(ctx, node.ID))
	_, err := store.GetNode(ctx, node.ID)
	assert.ErrorIs(t, err, code.RecordNotFound)

	assert.ErrorIs(t, store.DeleteNode(ctx, node.ID), code.RecordNotFound)
}

func TestBlastDBKeyedByNID(t *testing.T) {
	ctx := context.Background()
	ds := testutil.NewDatastore(t)
	store := New(ds)

	assert.True(t, ds.DBWithContext(ctx).Migrator().HasColumn(&model.BlastDB{}, "nid"))

	node := newNode("genome", model.DBTypeProtein)
	require.NoError(t, store.CreateNode(ctx, node))

	var rows int64
	require.NoError(t, ds.DBWithContext(ctx).Model(&model.BlastDB{}).Where("nid = ?", node.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, store.DeleteNode(ctx, node.ID))
	require.NoError(t, ds.DBWithContext(ctx).Model(&model.BlastDB{}).Where("nid = ?", node.ID).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestCreateNodeRollbackResetsIDs(t *testing.T) {
	ctx := context.Background()
	ds := testutil.NewDatastore(t)
	store := New(ds)
	require.NoError(t, ds.DBWithContext(ctx).Migrator().DropTable(&model.BlastDB{}))

	node := newNode("genome", model.DBTypeNucleotide)
	err := store.CreateNode(ctx, node)
	assert.ErrorIs(t, err, code.CreateDataErr)
	assert.Zero(t, node.ID)
	assert.Zero(t, node.BlastDB.NID)

	var rows int64
	require.NoError(t, ds.DBWithContext(ctx).Model(&model.Node{}).Count(&rows).Error)
	assert.Zero(t, rows)
}
