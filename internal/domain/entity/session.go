package entity

// AuthState is the published session snapshot. User is nil whenever
// IsAuthenticated is false. Error holds the last failed operation's
// user-facing message until a new attempt starts or it is cleared.
type AuthState struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsLoading       bool   `json:"isLoading"`
	Error           string `json:"error"`
}

// Clone returns a deep copy of the state so observers cannot mutate the
// store's user through a published snapshot.
func (s AuthState) Clone() AuthState {
	clone := s
	clone.User = s.User.Clone()

	return clone
}

// LoginCredentials carries a login attempt's inputs.
type LoginCredentials struct {
	Email      string
	Password   string
	RememberMe bool
}

// SignupData carries a registration attempt's inputs.
type SignupData struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Role            Role
	AgreeToTerms    bool
}
