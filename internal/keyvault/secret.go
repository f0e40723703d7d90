package keyvault

import "sync"

const redacted = "[REDACTED]"

// SecretKey holds decrypted private key bytes.
// It never renders its contents through fmt, JSON or text encoding.
// Call Destroy as soon as the key is no longer needed.
type SecretKey struct {
	mu   sync.Mutex
	data []byte
}

// NewSecretKey takes ownership of b; Destroy wipes it.
func NewSecretKey(b []byte) *SecretKey {
	return &SecretKey{data: b}
}

// Bytes returns the backing slice, or nil after Destroy.
// The slice must not be retained by the caller.
func (k *SecretKey) Bytes() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.data
}

// Destroy overwrites the key bytes. Safe to call more than once.
func (k *SecretKey) Destroy() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	wipe(k.data)
	k.data = nil
}

func (k *SecretKey) String() string   { return redacted }
func (k *SecretKey) GoString() string { return redacted }

func (k *SecretKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (k *SecretKey) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
