package inkwell

// NewIdentityFromUser adapts a stored User into the Identity interface for
// token generation.
func NewIdentityFromUser(user *User) Identity {
	if user == nil {
		return nil
	}
	return authIdentity{
		id:       user.ID,
		username: user.Username,
		email:    user.Email,
	}
}
