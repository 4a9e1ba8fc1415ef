package setup

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

const entropyDevice = "/dev/urandom"

// SecretSource produces hex-encoded random secrets. Primary is the
// process CSPRNG; if a read from it fails the source falls back to the
// entropy device. Both failing is fatal for the caller, never a weak or
// empty secret.
type SecretSource struct {
	Primary  io.Reader
	Fallback func(n int) ([]byte, error)
}

func NewSecretSource() *SecretSource {
	return &SecretSource{Primary: rand.Reader, Fallback: readEntropyDevice}
}

func readEntropyDevice(n int) ([]byte, error) {
	f, err := os.Open(entropyDevice)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Hex returns exactly 2n lowercase hex characters for n random bytes.
func (s *SecretSource) Hex(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.Primary, buf); err != nil {
		fb, fbErr := s.Fallback(n)
		if fbErr != nil {
			return "", fmt.Errorf("secret generation failed: %v (fallback: %w)", err, fbErr)
		}
		buf = fb
	}
	return hex.EncodeToString(buf)[:2*n], nil
}

// GenerateSecrets fills the session's credential fields, exactly once per
// run. The Synapse-only secrets are generated only when that backend is
// selected.
func (s *Session) GenerateSecrets(src *SecretSource) error {
	var err error
	if s.TurnAPIKey, err = src.Hex(16); err != nil {
		return err
	}
	if s.TurnSecret, err = src.Hex(32); err != nil {
		return err
	}
	if s.Backend != BackendSynapse {
		return nil
	}
	if s.RegistrationSecret, err = src.Hex(32); err != nil {
		return err
	}
	if s.MacaroonSecret, err = src.Hex(32); err != nil {
		return err
	}
	s.FormSecret, err = src.Hex(32)
	return err
}
