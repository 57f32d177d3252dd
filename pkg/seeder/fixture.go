package seeder

import (
	"github.com/creasty/defaults"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

const (
	DefaultTitle  = "Test Blast Database"
	DefaultDBPath = "/fake/path/here"
)

// BlastDBFixture is a partially filled blastdb node. Empty fields take the
// defaults from their tags; DBName falls back to Title.
type BlastDBFixture struct {
	Title         string `default:"Test Blast Database"`
	DBName        string
	DBPath        string            `default:"/fake/path/here"`
	DBType        model.DBType      `default:"nucleotide"`
	LinkoutType   model.LinkoutType `default:"none"`
	CvitjsEnabled bool
}

// WithDefaults returns a copy of f with every unset field defaulted.
func (f BlastDBFixture) WithDefaults() BlastDBFixture {
	defaults.MustSet(&f)
	if f.DBName == "" {
		f.DBName = f.Title
	}
	return f
}

// apply writes the defaulted fixture onto a prepared node owned by uid.
// Type, language and the publishing flags are fixed.
func (f BlastDBFixture) apply(node *model.Node, uid int64) {
	f = f.WithDefaults()
	node.Type = model.BlastDBNodeType
	node.Title = f.Title
	node.Language = model.LanguageNone
	node.UID = uid
	node.Status = true
	node.Promote = false
	node.Comment = false
	node.BlastDB = &model.BlastDB{
		Name:          f.DBName,
		Path:          f.DBPath,
		DBType:        f.DBType,
		LinkoutType:   f.LinkoutType,
		CvitjsEnabled: f.CvitjsEnabled,
	}
}
