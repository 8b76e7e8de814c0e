package loan

import (
	"github.com/Jaswanth86/Credit/internal/domain/user"
)

type Operation string

const (
	OpSubmit  Operation = "submit"
	OpVerify  Operation = "verify"
	OpApprove Operation = "approve"
	OpReject  Operation = "reject"
)

// Rule is one row of the lifecycle transition table: which operation moves a
// loan from which status to which, and who may invoke it.
type Rule struct {
	Op    Operation
	From  Status
	To    Status
	Roles []user.Role
}

// rules is the whole lifecycle. pending and verified are the only non-terminal
// statuses; reject is reachable from both, with a wider role set from pending.
var rules = []Rule{
	{Op: OpVerify, From: StatusPending, To: StatusVerified, Roles: []user.Role{user.RoleVerifier}},
	{Op: OpReject, From: StatusPending, To: StatusRejected, Roles: []user.Role{user.RoleVerifier, user.RoleAdmin}},
	{Op: OpApprove, From: StatusVerified, To: StatusApproved, Roles: []user.Role{user.RoleAdmin}},
	{Op: OpReject, From: StatusVerified, To: StatusRejected, Roles: []user.Role{user.RoleAdmin}},
}

// CanSubmit reports whether the role may create new loan records.
func CanSubmit(role user.Role) bool { return role == user.RoleUser }

// RuleFor returns the transition rule for op out of the given status.
func RuleFor(op Operation, from Status) (Rule, bool) {
	for _, r := range rules {
		if r.Op == op && r.From == from {
			return r, true
		}
	}
	return Rule{}, false
}

// CheckTransition validates op against the current status and acting role and
// returns the target status. Both a wrong current status and an unauthorized
// role yield a TransitionError, so callers see one refusal kind for both.
func CheckTransition(op Operation, from Status, role user.Role) (Status, error) {
	r, ok := RuleFor(op, from)
	if !ok {
		return "", &TransitionError{Op: op, Current: from}
	}
	for _, allowed := range r.Roles {
		if role == allowed {
			return r.To, nil
		}
	}
	return "", &TransitionError{Op: op, Current: from}
}
