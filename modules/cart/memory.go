package cart

// MemoryBucket keeps snapshots in a plain map. Useful for tests and for
// carts that do not need to outlive the process.
type MemoryBucket map[string]string

func NewMemoryBucket() MemoryBucket {
	return MemoryBucket{}
}

func (m MemoryBucket) Get(key string) (string, bool, error) {
	value, exists := m[key]
	return value, exists, nil
}

func (m MemoryBucket) Set(key, value string) error {
	m[key] = value
	return nil
}
