package entities

type SideEffectSystem string

const (
	SystemFileStore SideEffectSystem = "file_store"
	SystemLedger    SideEffectSystem = "ledger"
	SystemNotifier  SideEffectSystem = "notifier"
)

type SideEffectStatus string

const (
	StatusSucceeded SideEffectStatus = "succeeded"
	StatusFailed    SideEffectStatus = "failed"
)

// SideEffectOutcome records the result of one best-effort write performed
// after (or, for the file store, before) the authoritative calendar commit.
type SideEffectOutcome struct {
	System SideEffectSystem `json:"system"`
	Status SideEffectStatus `json:"status"`
	Detail string           `json:"detail,omitempty"`
}

func (o SideEffectOutcome) Failed() bool {
	return o.Status == StatusFailed
}
