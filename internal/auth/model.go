package auth

// Roles
const (
	RoleRestaurant = "restaurant"
	RoleAdmin      = "admin"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
