package reconciliation

import (
	"fmt"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// Allocate splits original into the units that stay in the drawer and the units removed for
// deposit, so that the drawer holds target (minor units) where the stock allows it.
//
// Ineligible tiers are always deposited in full. Eligible tiers are walked from the largest face
// value down, taking as many whole units as fit into the value that must leave the drawer. When
// the small tiers run out before that value is met, the remainder stays in the drawer and is
// reported as Overage. When the eligible stock is already at or below target nothing is taken.
func Allocate(original domain.DenominationVector, def *domain.CurrencyDefinition, target int64) (domain.Allocation, error) {
	if target < 0 {
		return domain.Allocation{}, fmt.Errorf("%w: %d is negative", apperrors.ErrInvalidTarget, target)
	}
	if err := original.Validate(def); err != nil {
		return domain.Allocation{}, err
	}

	eligibleFrom := def.EligibleFrom()
	deposit := domain.NewDenominationVector(def)

	var eligibleTotal int64
	for i := eligibleFrom; i < len(def.Tiers); i++ {
		eligibleTotal += original[i] * def.Tiers[i].FaceValue
	}

	depositNeed := max(eligibleTotal-target, 0)
	remaining := depositNeed
	for i := eligibleFrom; i < len(def.Tiers); i++ {
		face := def.Tiers[i].FaceValue
		take := min(original[i], remaining/face)
		deposit[i] = take
		remaining -= take * face
	}

	for i := 0; i < eligibleFrom; i++ {
		deposit[i] = original[i]
	}

	drawer, err := original.Difference(deposit)
	if err != nil {
		// Unreachable for validated input: every take is bounded by the original count.
		return domain.Allocation{}, fmt.Errorf("allocation broke conservation: %w", err)
	}

	return domain.Allocation{
		Drawer:      drawer,
		Deposit:     deposit,
		DepositNeed: depositNeed,
		Overage:     remaining,
	}, nil
}
