package migrate

import (
	"context"

	"github.com/tripal/tripal-blast/pkg/common"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

var models = []any{
	&model.User{},
	&model.Node{},
	&model.BlastDB{},
}

// Table migrates the schema and installs the privileged account (uid 1) when absent.
func Table(ctx context.Context, ds *db.Datastore) error {
	d := ds.DBWithContext(ctx)
	for _, m := range models {
		if err := d.AutoMigrate(m); err != nil {
			logger.Errorf(ctx, "migrate table err: %+v", err)
			return err
		}
	}

	admin := &model.User{
		BaseModel: model.BaseModel{ID: model.AdminUID},
		Name:      "admin",
		Role:      common.SuperAdmin,
		Status:    true,
	}
	if err := d.Where("id = ?", model.AdminUID).FirstOrCreate(admin).Error; err != nil {
		logger.Errorf(ctx, "install admin account err: %+v", err)
		return err
	}
	// An explicit id does not advance the postgres serial sequence.
	if d.Dialector.Name() == "postgres" {
		err := d.Exec("SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))").Error
		if err != nil {
			logger.Errorf(ctx, "reset users sequence err: %+v", err)
			return err
		}
	}
	return nil
}
