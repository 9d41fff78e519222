package enums

// UserRole distinguishes produce buyers from selling farmers.
type UserRole string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleFarmer UserRole = "farmer"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleBuyer, UserRoleFarmer:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}
