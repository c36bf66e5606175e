package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// OwnerKind tells registered users and anonymous guests apart.
type OwnerKind string

const (
	OwnerUser  OwnerKind = "user"
	OwnerGuest OwnerKind = "guest"
)

func (k OwnerKind) Valid() bool {
	return k == OwnerUser || k == OwnerGuest
}

// Owner identifies the entity a device belongs to.
type Owner struct {
	Kind OwnerKind `json:"kind" validate:"owner_kind"`
	ID   uuid.UUID `json:"id" validate:"required"`
}

func UserOwner(id uuid.UUID) Owner  { return Owner{Kind: OwnerUser, ID: id} }
func GuestOwner(id uuid.UUID) Owner { return Owner{Kind: OwnerGuest, ID: id} }

func (o Owner) String() string { return fmt.Sprintf("%s:%s", o.Kind, o.ID) }
