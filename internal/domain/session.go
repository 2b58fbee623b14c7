package domain

// User is a tracker account.
// Fields are ordered to minimize memory padding.
type User struct {
	Username string
	Name     string
	ID       int
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Project is a tracker project that issues are created in.
// Fields are ordered to minimize memory padding.
type Project struct {
	Name              string
	PathWithNamespace string
	WebURL            string
	ID                int
}

// Membership is a user's membership record on a project.
type Membership struct {
	UserID      int
	AccessLevel int
}

// Milestone is a project milestone addressed by its iid.
// Fields are ordered to minimize memory padding.
type Milestone struct {
	Title string
	State string
	ID    int
	IID   int
}

// Session is the validated context issues are created in.
// It is resolved once at startup and read-only afterwards.
type Session struct {
	User      *User
	Project   *Project
	Milestone *Milestone
}
