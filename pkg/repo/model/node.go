package model

type NodeType string

const BlastDBNodeType NodeType = "blastdb"

// LanguageNone marks language-neutral content.
const LanguageNone = "und"

type DBType string

const (
	DBTypeNucleotide DBType = "nucleotide"
	DBTypeProtein    DBType = "protein"
)

func (t DBType) Valid() bool {
	return t == DBTypeNucleotide || t == DBTypeProtein
}

type LinkoutType string

const (
	LinkoutNone    LinkoutType = "none"
	LinkoutLink    LinkoutType = "link"
	LinkoutGBrowse LinkoutType = "gbrowse"
	LinkoutJBrowse LinkoutType = "jbrowse"
)

func (t LinkoutType) Valid() bool {
	switch t {
	case LinkoutNone, LinkoutLink, LinkoutGBrowse, LinkoutJBrowse:
		return true
	}
	return false
}

type Node struct {
	BaseModel
	Type     NodeType `gorm:"type:varchar(32);not null;index" json:"type"`
	Title    string   `gorm:"type:varchar(255);not null" json:"title"`
	Language string   `gorm:"type:varchar(12);not null" json:"language"`
	UID      int64    `gorm:"not null;index" json:"uid"`
	Status   bool     `gorm:"not null" json:"status"`
	Promote  bool     `gorm:"not null" json:"promote"`
	Comment  bool     `gorm:"not null" json:"comment"`
	BlastDB  *BlastDB `gorm:"foreignKey:NID" json:"blastdb,omitempty"`
}

func (*Node) TableName() string { return "nodes" }

// BlastDB holds the BLAST database fields of a blastdb node.
type BlastDB struct {
	NID           int64       `gorm:"column:nid;primaryKey;autoIncrement:false" json:"nid"`
	Name          string      `gorm:"column:db_name;type:varchar(255);not null" json:"db_name"`
	Path          string      `gorm:"column:db_path;type:varchar(1023);not null" json:"db_path"`
	DBType        DBType      `gorm:"column:db_dbtype;type:varchar(15);not null;index" json:"db_type"`
	LinkoutType   LinkoutType `gorm:"column:dbxref_linkout_type;type:varchar(50);not null" json:"linkout_type"`
	LinkoutRegex  string      `gorm:"column:dbxref_id_regex;type:varchar(255)" json:"linkout_regex,omitempty"`
	LinkoutDBID   *int64      `gorm:"column:dbxref_db_id" json:"linkout_db_id,omitempty"`
	CvitjsEnabled bool        `gorm:"column:cvitjs_enabled;not null" json:"cvitjs_enabled"`
}

func (*BlastDB) TableName() string { return "blastdb" }
