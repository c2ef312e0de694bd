package models

// Role-gated capability checks live here so views never duplicate the
// branching. Every screen asks these, never compares roles directly.

// CanCreateRestaurant reports whether the role may use the restaurant
// creation form. Customers browse and order; everyone else manages listings.
func CanCreateRestaurant(role UserRole) bool {
	switch role {
	case RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasOrdersPanel reports whether the dashboard shows the personal orders
// panel. Only customers have orders of their own to list.
func HasOrdersPanel(role UserRole) bool {
	return role == RoleCustomer
}
