package reconcile

import "pixclaim/internal/claim/models"

// Cell is one resolved entry of the decision table.
type Cell struct {
	State     models.KeyState
	Donation  bool
	ClaimType models.ClaimType
	Status    models.ClaimStatus
	Outcome   Outcome
}

// Cells enumerates the whole table in a stable order: state, then donation
// (false first), then claim type, then status.
func Cells() []Cell {
	out := make([]Cell, 0, len(models.ClaimKeyStates)*2*len(models.ClaimTypes)*len(models.ClaimStatuses))
	for _, state := range models.ClaimKeyStates {
		for _, donation := range []bool{false, true} {
			for _, claimType := range models.ClaimTypes {
				for _, status := range models.ClaimStatuses {
					in := Input{State: state, Donation: donation, ClaimType: claimType, Status: status}
					outcome, err := Decide(in)
					if err != nil {
						// Every listed state has a row.
						panic(err)
					}
					out = append(out, Cell{
						State:     state,
						Donation:  donation,
						ClaimType: claimType,
						Status:    status,
						Outcome:   outcome,
					})
				}
			}
		}
	}
	return out
}
