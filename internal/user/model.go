package user

type User struct {
	ID          int      `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"-"`
	IsSuperuser bool     `json:"-"`
	Groups      []string `json:"groups"`
}

// Role is the primary group shown to the frontend: the first group the user
// belongs to, or "user" when there is none.
func (u User) Role() string {
	if len(u.Groups) > 0 {
		return u.Groups[0]
	}
	return "user"
}
