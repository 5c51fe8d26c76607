package domain

import "time"

// PrincipalKind discriminates the three actor types in the marketplace.
// Role checks must switch exhaustively on this type rather than compare
// raw strings.
type PrincipalKind string

const (
	KindUser   PrincipalKind = "user"
	KindExpert PrincipalKind = "expert"
	KindAdmin  PrincipalKind = "admin"
)

// Valid reports whether k is one of the known principal kinds.
func (k PrincipalKind) Valid() bool {
	switch k {
	case KindUser, KindExpert, KindAdmin:
		return true
	}
	return false
}

// RoleAdmin marks a user record as an administrator. Admins live in the
// users collection; there is no separate admin registration path.
const RoleAdmin = "admin"

// User models a customer account.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Role         string    `json:"role,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Kind returns KindAdmin for users promoted via the role flag, KindUser
// otherwise.
func (u *User) Kind() PrincipalKind {
	if u.Role == RoleAdmin {
		return KindAdmin
	}
	return KindUser
}

// Expert models a service-provider account. Service is the category the
// expert registered under; Specialty, Bio, HourlyRate and Location are
// filled in later through profile updates.
type Expert struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Service      string    `json:"service"`
	DOB          string    `json:"dob,omitempty"`
	Location     string    `json:"location,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	HourlyRate   float64   `json:"hourly_rate,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the sanitized, request-scoped view of a principal attached to
// every resolved request. The zero value is the anonymous identity.
type Identity struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Kind      PrincipalKind `json:"kind"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
}

// IsAnonymous reports whether no principal was resolved for the request.
func (i Identity) IsAnonymous() bool {
	return i.ID == ""
}

// UserIdentity builds the request identity for a user (or admin) record.
func UserIdentity(u *User) Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		Kind:      u.Kind(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ExpertIdentity builds the request identity for an expert record.
func ExpertIdentity(e *Expert) Identity {
	return Identity{
		ID:        e.ID,
		Email:     e.Email,
		Kind:      KindExpert,
		FirstName: e.FirstName,
		LastName:  e.LastName,
	}
}
