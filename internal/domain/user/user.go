package user

// Principal identifies an authenticated caller.
type Principal struct {
	UserID string
	Name   string
	Admin  bool
}
