// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of account a user holds in the marketplace.
type Role string

const (
	// RoleFarmer indicates a grower who lists crops for sale.
	RoleFarmer Role = "farmer"
	// RoleBuyer indicates a purchaser of crops and supplies.
	RoleBuyer Role = "buyer"
	// RoleSupplier indicates a vendor of farming supplies.
	RoleSupplier Role = "supplier"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleSupplier:
		return true
	default:
		return false
	}
}
