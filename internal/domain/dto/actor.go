package dto

import "storefront/internal/domain/model"

// Actor is the caller identified by a bearer token. The zero value is anonymous.
type Actor struct {
	ID   string
	Role model.Role
}

func (a Actor) Anonymous() bool {
	return a.ID == ""
}

func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// CanModify reports whether a may change a record created by createdBy.
// Records without a creator are open to everyone.
func (a Actor) CanModify(createdBy string) bool {
	return createdBy == "" || a.IsAdmin() || (!a.Anonymous() && a.ID == createdBy)
}
