package redis

const (
	// KeyPrefixSlot is the prefix for persisted collection slots
	KeyPrefixSlot = "stash:slot:"
)

// SlotKey returns the Redis key holding the blob of a named slot
func SlotKey(name string) string {
	return KeyPrefixSlot + name
}
