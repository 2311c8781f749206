// SPDX-License-Identifier: MIT
// Package: treegen/builder
//
// partition.go — the thread-budget partitioning policy, as pure data.
//
// Contract:
//   - threadBudget ≥ 1 (else ErrThreadBudgetOutOfRange).
//   - branchFactor in 1..tree.MaxBranchFactor (else ErrBranchFactorOutOfRange).
//   - Returns exactly branchFactor grants, one per child slot, in slot order.
//   - Every grant carries a budget ≥ 1: a dispatched worker always owns at
//     least one worker's worth of budget, never zero.
//   - Pure and deterministic: no RNG, no state, same inputs ⇒ same plan.
//
// Complexity:
//   - Time: O(branchFactor). Space: O(branchFactor) for the plan.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treegen/tree"
)

// File-local method tags (stable error-context prefixes).
const (
	methodPartition = "Partition"
	minBudget       = 1
)

// Grant is the budget decision for one child slot.
type Grant struct {
	// Budget is the thread budget the child subtree may spend (≥ 1).
	Budget int

	// Concurrent reports whether the child is dispatched on its own worker.
	// Sequential grants are executed by the calling worker in slot order.
	Concurrent bool
}

// Partition decides, for each of branchFactor child slots, whether the child
// receives a dedicated concurrent worker and what sub-budget it may spend.
//
// Policy:
//   - threadBudget ≤ 1: all slots sequential with budget 1.
//   - branchFactor == 1: the single slot is sequential and inherits the
//     full remaining budget (degenerate case, nothing to fan out over).
//   - otherwise: the first min(branchFactor, threadBudget) slots are
//     concurrent with budget max(1, threadBudget/branchFactor); remaining
//     slots (when branchFactor > threadBudget) are sequential with budget 1.
//
// For the binary case this degenerates to halving: both children run
// concurrently with floor(threadBudget/2) each, floored to 1.
func Partition(threadBudget, branchFactor int) ([]Grant, error) {
	// Validate the parameter domain early to avoid partial work.
	if threadBudget < minBudget {
		return nil, fmt.Errorf("%s: threadBudget=%d < %d: %w",
			methodPartition, threadBudget, minBudget, ErrThreadBudgetOutOfRange)
	}
	if branchFactor < 1 || branchFactor > tree.MaxBranchFactor {
		return nil, fmt.Errorf("%s: branchFactor=%d not in 1..%d: %w",
			methodPartition, branchFactor, tree.MaxBranchFactor, ErrBranchFactorOutOfRange)
	}

	plan := make([]Grant, branchFactor)

	// Floor of the recursion: one worker left, everything below runs
	// in-line on it.
	if threadBudget <= minBudget {
		for i := range plan {
			plan[i] = Grant{Budget: minBudget}
		}

		return plan, nil
	}

	// Degenerate width: the only child keeps the whole budget.
	if branchFactor == 1 {
		plan[0] = Grant{Budget: threadBudget}

		return plan, nil
	}

	// General fan-out: divide the budget evenly, never below 1, and cap the
	// number of dedicated workers at the budget itself.
	concurrent := branchFactor
	if threadBudget < concurrent {
		concurrent = threadBudget
	}
	sub := threadBudget / branchFactor
	if sub < minBudget {
		sub = minBudget
	}

	for i := range plan {
		if i < concurrent {
			plan[i] = Grant{Budget: sub, Concurrent: true}
		} else {
			plan[i] = Grant{Budget: minBudget}
		}
	}

	return plan, nil
}
