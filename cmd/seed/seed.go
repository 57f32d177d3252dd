package seed

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tripal/tripal-blast/cmd/api"
	"github.com/tripal/tripal-blast/internal/config"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	"github.com/tripal/tripal-blast/pkg/seeder"
)

func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Create content fixtures in the configured database",
	}
	root.AddCommand(newBlastDB())
	return root
}

func newBlastDB() *cobra.Command {
	fixture := seeder.BlastDBFixture{}
	var dbType, linkoutType string

	cmd := &cobra.Command{
		Use:          "blastdb",
		Short:        "Create a blastdb node as the admin account",
		SilenceUsage: true,
		PreRunE:      api.InitDatabase,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixture.DBType = model.DBType(dbType)
			fixture.LinkoutType = model.LinkoutType(linkoutType)

			s, err := seeder.Seed(cmd.Context(), seeder.NewBlastDBNodeSeeder(db.DB(),
				seeder.WithFixture(fixture),
				seeder.WithAdminUID(config.Global().Seed.AdminUID)))
			if err != nil {
				return err
			}
			node := s.Node()
			fmt.Fprintf(cmd.OutOrStdout(), "created blastdb node %d (%s) %q\n", node.ID, node.UUID, node.Title)
			return nil
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.CloseDB(cmd.Context())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fixture.Title, "title", "", "node title (default \""+seeder.DefaultTitle+"\")")
	flags.StringVar(&fixture.DBName, "db-name", "", "database name (default: the title)")
	flags.StringVar(&fixture.DBPath, "db-path", "", "database path (default \""+seeder.DefaultDBPath+"\")")
	flags.StringVar(&dbType, "db-type", "", "nucleotide or protein (default nucleotide)")
	flags.StringVar(&linkoutType, "linkout-type", "", "none, link, gbrowse or jbrowse (default none)")
	flags.BoolVar(&fixture.CvitjsEnabled, "cvitjs", false, "enable CViTjs for the database")
	return cmd
}
