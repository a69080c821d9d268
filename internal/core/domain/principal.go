package domain

import "time"

// PrincipalKind discriminates the two disjoint principal stores. The values
// are the wire-level role strings the API exchanges with clients.
type PrincipalKind string

const (
	KindPatient      PrincipalKind = "USER"
	KindPractitioner PrincipalKind = "DOCTOR"
)

// ParseKind converts a client-declared user type into a PrincipalKind.
// The empty string is not a valid kind; callers that allow an undeclared
// kind must branch before calling this.
func ParseKind(s string) (PrincipalKind, error) {
	switch PrincipalKind(s) {
	case KindPatient, KindPractitioner:
		return PrincipalKind(s), nil
	default:
		return "", ErrInvalidUserType
	}
}

// Patient models a registered patient account.
type Patient struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	HealthID     *int64    `json:"health_id,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Practitioner models a registered doctor account.
type Practitioner struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name,omitempty"`
	LicenseID      *int64    `json:"license_id,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Specialization *int      `json:"specialization,omitempty"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Principal is the normalized, kind-tagged record the resolver hands to the
// rest of the auth flow. ExternalID carries the health-id for patients and
// the license-id for practitioners.
type Principal struct {
	ID           int64
	Kind         PrincipalKind
	Username     string
	PasswordHash string
	Name         string
	ExternalID   *int64
}

// PatientPrincipal normalizes a patient row.
func PatientPrincipal(p *Patient) *Principal {
	return &Principal{
		ID:           p.ID,
		Kind:         KindPatient,
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Name:         p.Name,
		ExternalID:   p.HealthID,
	}
}

// PractitionerPrincipal normalizes a practitioner row.
func PractitionerPrincipal(d *Practitioner) *Principal {
	return &Principal{
		ID:           d.ID,
		Kind:         KindPractitioner,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		ExternalID:   d.LicenseID,
	}
}

// Claims is the verified content of a bearer token.
type Claims struct {
	PrincipalID int64
	Kind        PrincipalKind
	Username    string
	Name        string
	ExternalID  *int64
}

// Profile is the view of a principal returned by the profile endpoint.
// Kind-specific fields are nil for the other kind.
type Profile struct {
	ID             int64         `json:"id"`
	Username       string        `json:"username"`
	Name           string        `json:"name,omitempty"`
	Role           PrincipalKind `json:"role"`
	Phone          *string       `json:"phone,omitempty"`
	HealthID       *int64        `json:"healthId,omitempty"`
	LicenseID      *int64        `json:"licenseId,omitempty"`
	Specialization *int          `json:"specialization,omitempty"`
	Verified       *bool         `json:"verified,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}
