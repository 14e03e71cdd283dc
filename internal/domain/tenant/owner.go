// Package tenant models which admin owns a record. Records without an owner
// are legacy or orphaned data and stay readable by every admin.
package tenant

// Owner is the nullable admin reference carried by a client.
type Owner struct {
	adminID *uint
}

// OwnedBy returns an owner bound to adminID.
func OwnedBy(adminID uint) Owner {
	return Owner{adminID: &adminID}
}

// Unowned returns an owner with no admin.
func Unowned() Owner {
	return Owner{}
}

// FromNullable builds an Owner from a nullable column value.
func FromNullable(adminID *uint) Owner {
	if adminID == nil {
		return Unowned()
	}
	return OwnedBy(*adminID)
}

// AdminID returns the owning admin or nil.
func (o Owner) AdminID() *uint {
	if o.adminID == nil {
		return nil
	}
	id := *o.adminID
	return &id
}

func (o Owner) IsUnowned() bool {
	return o.adminID == nil
}

// VisibleTo reports whether actor may read or modify the owned record.
func (o Owner) VisibleTo(actor uint) bool {
	return o.adminID == nil || *o.adminID == actor
}
