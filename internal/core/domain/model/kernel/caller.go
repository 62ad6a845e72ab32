package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Role is the capability set of an authenticated user. Values are part of the
// bearer token contract.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleWorker        Role = "worker"
	RoleAgencyPartner Role = "agency_partner"
	RoleAdmin         Role = "admin"
)

// Validate rejects unknown roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleWorker, RoleAgencyPartner, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// CanAcceptJobs reports whether the role may take jobs from the searching pool.
func (r Role) CanAcceptJobs() bool {
	return r == RoleWorker || r == RoleAgencyPartner
}

func (r Role) String() string {
	return string(r)
}

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller is the authenticated identity on whose behalf an operation runs.
// It is resolved by the transport from a bearer credential.
type Caller struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewCaller validates the user id and role.
func NewCaller(id UUID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// ID returns the user id.
func (c Caller) ID() UUID {
	return c.id
}

// Role returns the user role.
func (c Caller) Role() Role {
	return c.role
}

// Validate reports whether the caller was built by NewCaller.
func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}
