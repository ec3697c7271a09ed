// Package storage provides snapshot blob transports. A transport is the
// persistence boundary of the store: one opaque blob in, one out, the
// local-storage key of the original environment generalized to whatever
// backend the host configures.
package storage

// Transport reads and writes the single serialized snapshot blob.
// Read returns (nil, nil) when no snapshot has been persisted yet.
// Write may fail (quota, disk); callers treat that as non-fatal.
type Transport interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// Memory is an in-process Transport for tests and non-interactive
// contexts where no persistence backend is available.
type Memory struct {
	data     []byte
	writeErr error
}

// NewMemory returns an empty in-memory transport.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read() ([]byte, error) {
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *Memory) Write(data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

func (m *Memory) Close() error { return nil }

// FailWrites makes subsequent writes return err (nil restores normal
// operation). Lets tests exercise the quota-exceeded path.
func (m *Memory) FailWrites(err error) {
	m.writeErr = err
}

// Seed replaces the stored blob directly, bypassing write-failure
// injection.
func (m *Memory) Seed(data []byte) {
	m.data = data
}
