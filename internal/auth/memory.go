package auth

import "sync"

type credential struct {
	userID   string
	password string
}

// MemoryVerifier is an in-memory CredentialVerifier. It is used by the demo
// binary and in tests; real deployments supply a store-backed verifier.
type MemoryVerifier struct {
	mu    sync.RWMutex
	creds map[string]credential
}

// NewMemoryVerifier creates an empty verifier.
func NewMemoryVerifier() *MemoryVerifier {
	return &MemoryVerifier{creds: make(map[string]credential)}
}

// Add records credentials for a login.
func (v *MemoryVerifier) Add(loginID, password, userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.creds[loginID] = credential{userID: userID, password: password}
}

// Verify implements CredentialVerifier.
func (v *MemoryVerifier) Verify(loginID, password string) (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	cred, ok := v.creds[loginID]
	if !ok || cred.password != password {
		return "", ErrInvalidCredentials
	}
	return cred.userID, nil
}
