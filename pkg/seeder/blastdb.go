package seeder

import (
	"context"

	"github.com/tripal/tripal-blast/pkg/core/blastdb"
	impl "github.com/tripal/tripal-blast/pkg/core/blastdb/blastdb"
	"github.com/tripal/tripal-blast/pkg/core/identity"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	nodeStore "github.com/tripal/tripal-blast/pkg/repo/node"
	userStore "github.com/tripal/tripal-blast/pkg/repo/user"
)

// BlastDBNodeSeeder creates one blastdb node as the admin account.
type BlastDBNodeSeeder struct {
	fixture  BlastDBFixture
	adminUID int64
	session  *identity.Session
	users    identity.UserLoader
	service  blastdb.Service

	node *model.Node
}

type Option func(*BlastDBNodeSeeder)

func WithFixture(f BlastDBFixture) Option {
	return func(s *BlastDBNodeSeeder) { s.fixture = f }
}

func WithAdminUID(uid int64) Option {
	return func(s *BlastDBNodeSeeder) { s.adminUID = uid }
}

func WithSession(session *identity.Session) Option {
	return func(s *BlastDBNodeSeeder) { s.session = session }
}

func WithUserRepo(users identity.UserLoader) Option {
	return func(s *BlastDBNodeSeeder) { s.users = users }
}

func WithService(service blastdb.Service) Option {
	return func(s *BlastDBNodeSeeder) { s.service = service }
}

func NewBlastDBNodeSeeder(ds *db.Datastore, opts ...Option) *BlastDBNodeSeeder {
	s := &BlastDBNodeSeeder{
		adminUID: model.AdminUID,
		session:  identity.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.users == nil {
		s.users = userStore.New(ds)
	}
	if s.service == nil {
		s.service = impl.New(nodeStore.New(ds), nil)
	}
	return s
}

func (s *BlastDBNodeSeeder) Up(ctx context.Context) error {
	return s.session.Impersonate(ctx, s.users, s.adminUID, func(ctx context.Context) error {
		node := &model.Node{}
		s.service.Prepare(ctx, node)
		s.fixture.apply(node, s.session.Current().ID)
		if err := s.service.Submit(ctx, node); err != nil {
			return err
		}
		if err := s.service.Save(ctx, node); err != nil {
			return err
		}
		s.node = node
		return nil
	})
}

// Node returns the node created by Up, nil before Up has succeeded.
func (s *BlastDBNodeSeeder) Node() *model.Node {
	return s.node
}
