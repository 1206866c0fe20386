// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether a principal may perform an operation on an
// owned record. It is a pure function of its inputs and holds no state.
package guard

// Operation is the kind of access requested.
type Operation int

const (
	OpList Operation = iota
	OpRead
	OpCreate
	OpUpdate
	OpDelete
)

func (o Operation) String() string {
	switch o {
	case OpList:
		return "list"
	case OpRead:
		return "read"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Decision is the result of [Authorize].
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Allowed reports whether the decision permits the operation.
func (d Decision) Allowed() bool {
	return d == Allow
}

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Owned is implemented by every record that belongs to a single user.
type Owned interface {
	OwnerID() int64
}

// Principal is the identity on whose behalf a request runs.
// The zero value is an anonymous principal.
type Principal struct {
	UserID int64
}

// Authenticated reports whether the principal carries a user identity.
func (p Principal) Authenticated() bool {
	return p.UserID > 0
}

// Authorize applies the ownership rules:
//   - list, read and create require an authenticated principal;
//   - update and delete additionally require the principal to own record.
//
// Reads do not compare owners here because reads are already scoped to the
// principal by the store. A nil record on update/delete is denied.
func Authorize(op Operation, record Owned, principal Principal) Decision {
	if !principal.Authenticated() {
		return Deny
	}

	switch op {
	case OpList, OpRead, OpCreate:
		return Allow
	case OpUpdate, OpDelete:
		if record == nil || record.OwnerID() != principal.UserID {
			return Deny
		}
		return Allow
	default:
		return Deny
	}
}
