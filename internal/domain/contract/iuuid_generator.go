package contract

// IUUIDGenerator abstracts ID generation so ledger transforms stay
// deterministic under test.
type IUUIDGenerator interface {
	NewUUID() string
}
