// Package seeder creates content fixtures for tests and local development.
//
// A seeder is run through Seed and keeps what it created for later inspection:
//
//	s, err := seeder.Seed(ctx, seeder.NewBlastDBNodeSeeder(ds))
//	node := s.Node()
package seeder

import "context"

type Seeder interface {
	Up(ctx context.Context) error
}

// Seed runs s and hands it back so the caller can read what it created.
func Seed[S Seeder](ctx context.Context, s S) (S, error) {
	return s, s.Up(ctx)
}
