package auth

// RoleRetailer is the only role this service issues; every registered
// shop owner gets it.
const RoleRetailer = "retailer"

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
