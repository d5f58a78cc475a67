package domain

// Identity is the authenticated back-office user. Authentication is mocked
// for this deployment; the identity survives a reload only through the
// session slot store and is cleared on logout.
type Identity struct {
	ID       string
	Name     string
	Email    string
	Avatar   string
	Role     string
	Phone    string
	Bio      string
	Location string

	// PasswordHash is set for locally registered identities so the raw
	// credential never reaches the session mirror. Mock login does not
	// verify it.
	PasswordHash string
}

// Agent is a member of the fixed sales roster leads can be assigned to.
type Agent struct {
	ID     string
	Name   string
	Avatar string
}
