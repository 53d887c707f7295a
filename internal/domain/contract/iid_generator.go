package contract

// IIDGenerator synthesizes opaque record ids. The prefix identifies the
// collection a record belongs to ("usr", "evt", "thr", ...).
type IIDGenerator interface {
	NewID(prefix string) string
}
