package domain

// Session is the authenticated state carried with a single request.
// It is passed explicitly rather than held in process-global state so
// the services stay testable. A nil session is anonymous.
type Session struct {
	UserID    string
	Alias     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != ""
}

// Admin reports whether the session belongs to an administrator.
func (s *Session) Admin() bool {
	return s.LoggedIn() && s.IsAdmin
}
