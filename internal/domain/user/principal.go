package user

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}
