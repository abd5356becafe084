package domain

// Relation is how an actor stands with respect to one task. The zero value
// is no relation.
type Relation struct {
	kind       relationKind
	permission Permission
}

type relationKind uint8

const (
	relationNone relationKind = iota
	relationOwner
	relationShared
)

var (
	RelationNone  = Relation{kind: relationNone}
	RelationOwner = Relation{kind: relationOwner}
)

// RelationShared is a sharee holding permission p.
func RelationShared(p Permission) Relation {
	return Relation{kind: relationShared, permission: p}
}

// RelationOf derives the actor's relation from the task's owner and share
// list only. Owner wins over any share entry naming the same user.
func RelationOf(userID string, t *Task) Relation {
	if userID == "" || t == nil {
		return RelationNone
	}
	if t.OwnerID == userID {
		return RelationOwner
	}
	if s, ok := t.ShareFor(userID); ok {
		return RelationShared(s.Permission)
	}
	return RelationNone
}

func (r Relation) IsOwner() bool { return r.kind == relationOwner }

// Permission returns the share permission, or "" for owners and strangers.
func (r Relation) Permission() Permission { return r.permission }

func (r Relation) String() string {
	switch r.kind {
	case relationOwner:
		return "owner"
	case relationShared:
		return "shared:" + string(r.permission)
	default:
		return "none"
	}
}

// The decision table. Every permission check in the service goes through
// one of these four functions.

func CanView(userID string, t *Task) bool {
	r := RelationOf(userID, t)
	return r.kind == relationOwner || r.kind == relationShared
}

func CanEdit(userID string, t *Task) bool {
	r := RelationOf(userID, t)
	return r.kind == relationOwner || (r.kind == relationShared && r.permission == PermissionEdit)
}

func CanDelete(userID string, t *Task) bool {
	return RelationOf(userID, t).IsOwner()
}

func CanShare(userID string, t *Task) bool {
	return RelationOf(userID, t).IsOwner()
}
