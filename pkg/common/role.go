package common

type Role string

const (
	SuperAdmin Role = "super_admin"
	Admin      Role = "admin"
	Normal     Role = "normal"
	Anonymous  Role = "anonymous"
)

type Perm string

const (
	Read   Perm = "read"
	Create Perm = "create"
	Update Perm = "update"
	Delete Perm = "delete"
)

var rolePerms = map[Role][]Perm{
	SuperAdmin: {Read, Create, Update, Delete},
	Admin:      {Read, Create, Update, Delete},
	Normal:     {Read, Create},
	Anonymous:  {Read},
}

func (r Role) Has(p Perm) bool {
	for _, perm := range rolePerms[r] {
		if perm == p {
			return true
		}
	}
	return false
}
