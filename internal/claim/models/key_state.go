package models

// KeyState is the Pix-key service's view of a key. It is read-only here; the
// reconciliation engine requests transitions but never sets it.
type KeyState string

const (
	KeyStatePortabilityStarted   KeyState = "PORTABILITY_STARTED"
	KeyStatePortabilityConfirmed KeyState = "PORTABILITY_CONFIRMED"
	KeyStateOwnershipStarted     KeyState = "OWNERSHIP_STARTED"
	KeyStateOwnershipWaiting     KeyState = "OWNERSHIP_WAITING"
	KeyStateOwnershipConfirmed   KeyState = "OWNERSHIP_CONFIRMED"
	KeyStateReady                KeyState = "READY"
	KeyStateAddKeyReady          KeyState = "ADD_KEY_READY"
	KeyStatePortabilityReady     KeyState = "PORTABILITY_READY"
	KeyStateOwnershipReady       KeyState = "OWNERSHIP_READY"
	KeyStateClaimClosing         KeyState = "CLAIM_CLOSING"

	// Lifecycle states owned by the Pix-key service that no claim
	// notification can act on.
	KeyStatePending  KeyState = "PENDING"
	KeyStateDeleting KeyState = "DELETING"
	KeyStateDeleted  KeyState = "DELETED"
)

// ClaimKeyStates lists the states the claim decision table has a row for.
var ClaimKeyStates = []KeyState{
	KeyStatePortabilityStarted,
	KeyStatePortabilityConfirmed,
	KeyStateOwnershipStarted,
	KeyStateOwnershipWaiting,
	KeyStateOwnershipConfirmed,
	KeyStateReady,
	KeyStateAddKeyReady,
	KeyStatePortabilityReady,
	KeyStateOwnershipReady,
	KeyStateClaimClosing,
}

func (s KeyState) String() string { return string(s) }
