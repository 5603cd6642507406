package reconcile

// Kind tags the variant of an Outcome.
type Kind int

const (
	// kindUnset is the zero value; a table row that yields it is incomplete.
	kindUnset Kind = iota
	KindNoOp
	KindInvalidFlow
	KindExecute
)

func (k Kind) String() string {
	switch k {
	case KindNoOp:
		return "noop"
	case KindInvalidFlow:
		return "invalid_flow"
	case KindExecute:
		return "execute"
	default:
		return "unset"
	}
}

// Operation names one state-transition call on the Pix-key service.
type Operation string

const (
	OpConfirmPortabilityClaim  Operation = "confirmPortabilityClaim"
	OpCancelPortabilityClaim   Operation = "cancelPortabilityClaim"
	OpCompletePortabilityClaim Operation = "completePortabilityClaim"
	OpReadyPortabilityClaim    Operation = "readyPortabilityClaim"
	OpWaitOwnershipClaim       Operation = "waitOwnershipClaim"
	OpConfirmOwnershipClaim    Operation = "confirmOwnershipClaim"
	OpCancelOwnershipClaim     Operation = "cancelOwnershipClaim"
	OpCompleteOwnershipClaim   Operation = "completeOwnershipClaim"
	OpReadyOwnershipClaim      Operation = "readyOwnershipClaim"
	OpCompleteClaimClosing     Operation = "completeClaimClosing"
)

// Operations lists every transition the table can request.
var Operations = []Operation{
	OpConfirmPortabilityClaim,
	OpCancelPortabilityClaim,
	OpCompletePortabilityClaim,
	OpReadyPortabilityClaim,
	OpWaitOwnershipClaim,
	OpConfirmOwnershipClaim,
	OpCancelOwnershipClaim,
	OpCompleteOwnershipClaim,
	OpReadyOwnershipClaim,
	OpCompleteClaimClosing,
}

// Outcome is NoOp, InvalidFlow, or Execute(Operation).
type Outcome struct {
	Kind      Kind
	Operation Operation
}

var (
	NoOp        = Outcome{Kind: KindNoOp}
	InvalidFlow = Outcome{Kind: KindInvalidFlow}
)

// Execute builds the outcome that requests op.
func Execute(op Operation) Outcome {
	return Outcome{Kind: KindExecute, Operation: op}
}

func (o Outcome) String() string {
	if o.Kind == KindExecute {
		return string(o.Operation)
	}
	return o.Kind.String()
}
