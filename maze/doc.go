// Package maze finds every minimum-cost route through a grid maze where
// moving forward is cheap and turning is expensive.
//
// Model:
//
//   - A state is (position, facing). The search starts on the Start cell
//     facing Options.Facing with cost 0 and ends on the End cell, any facing.
//   - Moving one cell forward costs StepCost.
//   - Moving into a perpendicular neighbor costs TurnCost + StepCost and
//     changes facing to that direction.
//   - Moving into the neighbor directly behind is never allowed.
//   - Cells labelled Wall and absent cells are impassable.
//   - A single route never visits the same position twice.
//
// Algorithm:
//
//	Best-first exploration of branches ordered by cost. Each branch owns its
//	route as a persistent list sharing prefixes with its parent, so siblings
//	never alias mutable state. A per-(position, facing) best cost prunes any
//	branch that arrives strictly worse than an earlier one; branches arriving
//	with equal cost are kept, so every optimal route survives. The search stops
//	once the cheapest open branch exceeds the best goal cost.
//
// Complexity:
//
//   - Time:  O(B log B + B·L), B = branches created, L = route length
//     (the revisit check walks the branch's route).
//   - Space: O(B) route nodes, shared between branches.
//
// Errors (sentinel):
//
//   - ErrNilGrid            if the grid is nil.
//   - ErrNoStart / ErrNoEnd if the start or end marker is missing or not unique.
//   - ErrBadStepCost        if StepCost <= 0.
//   - ErrBadTurnCost        if TurnCost < 0.
//   - ErrBadFacing          if Facing is not a cardinal unit vector.
//   - ErrOptionViolation    wraps each of the three option errors above.
//
// An unreachable end is not an error: Result.Found is false.
//
// Example usage:
//
//	res, err := maze.Search(g, maze.WithTurnCost(1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Cost, res.TileCount())
//	}
package maze
