package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

func TestBlastDBFixtureWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   BlastDBFixture
		want BlastDBFixture
	}{
		{
			name: "empty",
			in:   BlastDBFixture{},
			want: BlastDBFixture{
				Title:       DefaultTitle,
				DBName:      DefaultTitle,
				DBPath:      DefaultDBPath,
				DBType:      model.DBTypeNucleotide,
				LinkoutType: model.LinkoutNone,
			},
		},
		{
			name: "title drives db name",
			in:   BlastDBFixture{Title: "Citrus sinensis genome"},
			want: BlastDBFixture{
				Title:       "Citrus sinensis genome",
				DBName:      "Citrus sinensis genome",
				DBPath:      DefaultDBPath,
				DBType:      model.DBTypeNucleotide,
				LinkoutType: model.LinkoutNone,
			},
		},
		{
			name: "everything set",
			in: BlastDBFixture{
				Title:         "Proteins",
				DBName:        "prot",
				DBPath:        "/data/blast/prot",
				DBType:        model.DBTypeProtein,
				LinkoutType:   model.LinkoutLink,
				CvitjsEnabled: true,
			},
			want: BlastDBFixture{
				Title:         "Proteins",
				DBName:        "prot",
				DBPath:        "/data/blast/prot",
				DBType:        model.DBTypeProtein,
				LinkoutType:   model.LinkoutLink,
				CvitjsEnabled: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.WithDefaults()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, got.WithDefaults(), "defaulting must be idempotent")
		})
	}
}

func TestBlastDBFixtureWithDefaultsDoesNotMutate(t *testing.T) {
	f := BlastDBFixture{DBPath: "/x"}
	_ = f.WithDefaults()
	assert.Equal(t, BlastDBFixture{DBPath: "/x"}, f)
}

func TestBlastDBFixtureNodeFixedFields(t *testing.T) {
	node := &model.Node{Language: "en", Promote: true}
	BlastDBFixture{Title: "T"}.apply(node, 5)

	assert.Equal(t, model.BlastDBNodeType, node.Type)
	assert.Equal(t, model.LanguageNone, node.Language)
	assert.Equal(t, int64(5), node.UID)
	assert.True(t, node.Status)
	assert.False(t, node.Promote)
	assert.False(t, node.Comment)
	assert.Equal(t, "T", node.BlastDB.Name)
	assert.False(t, node.BlastDB.CvitjsEnabled)
}
