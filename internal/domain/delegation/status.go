package delegation

import (
	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
)

// DefaultRequiredReferees is the roster size at which a delegation counts as complete.
const DefaultRequiredReferees = 3

// Rules carries the tunable parts of the delegation state machine.
type Rules struct {
	RequiredReferees int
}

func DefaultRules() Rules {
	return Rules{RequiredReferees: DefaultRequiredReferees}
}

func (r Rules) required() int {
	if r.RequiredReferees < 1 {
		return DefaultRequiredReferees
	}
	return r.RequiredReferees
}

// ComputeDelegationStatus derives the match delegation status from the ledger.
//
//	0 assignments                          -> pending
//	any declined assignment                -> partial
//	fewer than required                    -> partial
//	prev complete/confirmed, all accepted  -> confirmed
//	otherwise                              -> complete
//
// A declined assignment keeps the match at partial whatever the count,
// which is the same outcome ApplyDecline produces at the moment of decline.
func (r Rules) ComputeDelegationStatus(prev match.DelegationStatus, assignments []assignment.Assignment) match.DelegationStatus {
	if len(assignments) == 0 {
		return match.DelegationPending
	}
	if HasDeclined(assignments) || len(assignments) < r.required() {
		return match.DelegationPartial
	}
	if (prev == match.DelegationComplete || prev == match.DelegationConfirmed) && AllAccepted(assignments) {
		return match.DelegationConfirmed
	}
	return match.DelegationComplete
}

// AdvanceOnConfirm promotes a complete, fully accepted roster to confirmed.
// Any other acceptance leaves the status unchanged; a partial match only
// leaves partial through a roster change.
func (r Rules) AdvanceOnConfirm(prev match.DelegationStatus, assignments []assignment.Assignment) match.DelegationStatus {
	if prev != match.DelegationComplete && prev != match.DelegationConfirmed {
		return prev
	}
	if len(assignments) < r.required() || !AllAccepted(assignments) {
		return prev
	}
	return match.DelegationConfirmed
}

// ApplyDecline demotes complete and confirmed delegations to partial. Other states are unchanged.
func ApplyDecline(prev match.DelegationStatus) match.DelegationStatus {
	switch prev {
	case match.DelegationComplete, match.DelegationConfirmed:
		return match.DelegationPartial
	default:
		return prev
	}
}

func AllAccepted(assignments []assignment.Assignment) bool {
	if len(assignments) == 0 {
		return false
	}
	for _, a := range assignments {
		if a.Status != assignment.StatusAccepted {
			return false
		}
	}
	return true
}

func HasDeclined(assignments []assignment.Assignment) bool {
	for _, a := range assignments {
		if a.Status == assignment.StatusDeclined {
			return true
		}
	}
	return false
}
