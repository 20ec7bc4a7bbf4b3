package domain

// Workspace is the process-wide state: the route network and the
// delivery ledger. It is built once at startup, mutated in place by the
// services and handed to the stores on save.
type Workspace struct {
	Network *Network
	Ledger  *Ledger
}

// NewWorkspace returns a workspace with an empty network and ledger.
func NewWorkspace() *Workspace {
	return &Workspace{
		Network: NewNetwork(),
		Ledger:  NewLedger(),
	}
}
