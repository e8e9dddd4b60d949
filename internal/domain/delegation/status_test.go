package delegation

import (
	"testing"

	"github.com/riskibarqy/referee-delegation/internal/domain/assignment"
	"github.com/riskibarqy/referee-delegation/internal/domain/match"
	"github.com/stretchr/testify/assert"
)

func ledger(statuses ...assignment.Status) []assignment.Assignment {
	out := make([]assignment.Assignment, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, assignment.Assignment{Status: status})
	}
	return out
}

const (
	p = assignment.StatusPending
	a = assignment.StatusAccepted
	d = assignment.StatusDeclined
)

func TestComputeDelegationStatus(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name   string
		prev   match.DelegationStatus
		ledger []assignment.Assignment
		want   match.DelegationStatus
	}{
		{name: "empty ledger from pending", prev: match.DelegationPending, want: match.DelegationPending},
		{name: "empty ledger from confirmed", prev: match.DelegationConfirmed, want: match.DelegationPending},
		{name: "one assignment", prev: match.DelegationPending, ledger: ledger(p), want: match.DelegationPartial},
		{name: "two assignments", prev: match.DelegationPartial, ledger: ledger(p, a), want: match.DelegationPartial},
		{name: "three assignments", prev: match.DelegationPending, ledger: ledger(p, p, p), want: match.DelegationComplete},
		{name: "four assignments", prev: match.DelegationPartial, ledger: ledger(p, p, p, p), want: match.DelegationComplete},
		{name: "all accepted but prev partial", prev: match.DelegationPartial, ledger: ledger(a, a, a), want: match.DelegationComplete},
		{name: "all accepted from complete", prev: match.DelegationComplete, ledger: ledger(a, a, a), want: match.DelegationConfirmed},
		{name: "stays confirmed", prev: match.DelegationConfirmed, ledger: ledger(a, a, a), want: match.DelegationConfirmed},
		{name: "confirmed loses acceptance", prev: match.DelegationConfirmed, ledger: ledger(a, a, p), want: match.DelegationComplete},
		{name: "declined keeps partial with full roster", prev: match.DelegationPartial, ledger: ledger(a, a, d), want: match.DelegationPartial},
		{name: "declined with four", prev: match.DelegationComplete, ledger: ledger(a, a, a, d), want: match.DelegationPartial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.ComputeDelegationStatus(tc.prev, tc.ledger))
		})
	}
}

func TestComputeDelegationStatus_CustomRequiredReferees(t *testing.T) {
	rules := Rules{RequiredReferees: 2}
	assert.Equal(t, match.DelegationComplete, rules.ComputeDelegationStatus(match.DelegationPending, ledger(p, p)))
	assert.Equal(t, match.DelegationPartial, rules.ComputeDelegationStatus(match.DelegationPending, ledger(p)))

	zero := Rules{}
	assert.Equal(t, match.DelegationPartial, zero.ComputeDelegationStatus(match.DelegationPending, ledger(p, p)))
}

func TestAdvanceOnConfirm(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, match.DelegationConfirmed, rules.AdvanceOnConfirm(match.DelegationComplete, ledger(a, a, a)))
	assert.Equal(t, match.DelegationComplete, rules.AdvanceOnConfirm(match.DelegationComplete, ledger(a, a, p)))
	assert.Equal(t, match.DelegationPartial, rules.AdvanceOnConfirm(match.DelegationPartial, ledger(a, a)))
	assert.Equal(t, match.DelegationConfirmed, rules.AdvanceOnConfirm(match.DelegationConfirmed, ledger(a, a, a)))
}

func TestAdvanceOnConfirm_OnlyFromComplete(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name   string
		prev   match.DelegationStatus
		roster []assignment.Assignment
	}{
		{name: "partial after a decline was accepted again", prev: match.DelegationPartial, roster: ledger(p, a, p)},
		{name: "partial with every assignment accepted", prev: match.DelegationPartial, roster: ledger(a, a, a)},
		{name: "pending", prev: match.DelegationPending, roster: ledger(a, a, a)},
		{name: "complete with a pending response", prev: match.DelegationComplete, roster: ledger(a, p, a)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.prev, rules.AdvanceOnConfirm(tc.prev, tc.roster))
		})
	}
}

func TestApplyDecline(t *testing.T) {
	assert.Equal(t, match.DelegationPartial, ApplyDecline(match.DelegationConfirmed))
	assert.Equal(t, match.DelegationPartial, ApplyDecline(match.DelegationComplete))
	assert.Equal(t, match.DelegationPartial, ApplyDecline(match.DelegationPartial))
	assert.Equal(t, match.DelegationPending, ApplyDecline(match.DelegationPending))
}

// A decline never drops to pending, even when the declined assignment is the only one.
// Recomputing from the ledger agrees because declined assignments still count.
func TestDecline_SingleAssignmentStaysPartial(t *testing.T) {
	rules := DefaultRules()
	declined := ledger(d)

	assert.Equal(t, match.DelegationPartial, ApplyDecline(match.DelegationPartial))
	assert.Equal(t, match.DelegationPartial, rules.ComputeDelegationStatus(match.DelegationPartial, declined))
}

func TestDecline_AgreesWithRecompute(t *testing.T) {
	rules := DefaultRules()
	for _, prev := range []match.DelegationStatus{match.DelegationComplete, match.DelegationConfirmed} {
		after := ledger(a, a, d)
		assert.Equal(t, ApplyDecline(prev), rules.ComputeDelegationStatus(prev, after), prev)
	}
}
