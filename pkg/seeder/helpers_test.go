package seeder

import (
	"github.com/tripal/tripal-blast/pkg/core/blastdb"
	impl "github.com/tripal/tripal-blast/pkg/core/blastdb/blastdb"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/repo"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	nodeStore "github.com/tripal/tripal-blast/pkg/repo/node"
)

func realService(ds *db.Datastore) blastdb.Service {
	return impl.New(nodeStore.New(ds), nil)
}

func repoQuery() repo.NodeQuery {
	return repo.NodeQuery{Type: model.BlastDBNodeType}
}
