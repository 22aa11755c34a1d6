package provision

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"

	"gcssh/internal/errors"
	"gcssh/internal/gcloud"
)

// Fixed key pair filenames. The workflow always targets this pair; alternate
// key types or names in the credential store are ignored.
const (
	privateKeyName = "id_rsa"
	publicKeyName  = "id_rsa.pub"
)

// KeyStore manages the local credential store: the ~/.ssh directory holding
// the operator's key pair.
type KeyStore struct {
	// Dir is the credential store directory.
	Dir string

	gcloud *gcloud.Client
}

// NewKeyStore resolves the operator's credential store under their home
// directory. Fails when the home directory cannot be determined.
func NewKeyStore(gc *gcloud.Client) (*KeyStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrHomeDir,
			"Couldn't determine your home directory",
			"Set the HOME environment variable and try again.")
	}
	return &KeyStore{
		Dir:    filepath.Join(home, ".ssh"),
		gcloud: gc,
	}, nil
}

// NewKeyStoreAt creates a KeyStore rooted at an explicit directory.
func NewKeyStoreAt(dir string, gc *gcloud.Client) *KeyStore {
	return &KeyStore{Dir: dir, gcloud: gc}
}

// PrivateKeyPath returns the path of the fixed private key file.
func (s *KeyStore) PrivateKeyPath() string {
	return filepath.Join(s.Dir, privateKeyName)
}

// PublicKeyPath returns the path of the fixed public key file.
func (s *KeyStore) PublicKeyPath() string {
	return filepath.Join(s.Dir, publicKeyName)
}

// HasKeyPair reports whether both halves of the pair exist. A partial pair
// is not usable and triggers regeneration.
func (s *KeyStore) HasKeyPair() bool {
	if _, err := os.Stat(s.PrivateKeyPath()); err != nil {
		return false
	}
	if _, err := os.Stat(s.PublicKeyPath()); err != nil {
		return false
	}
	return true
}

// EnsureKeyPair makes sure the credential store exists with owner-only
// access and holds a usable key pair, generating one through the external
// CLI when absent.
func (s *KeyStore) EnsureKeyPair() error {
	if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(s.Dir, 0o700); err != nil {
			return errors.Wrap(err, errors.ErrIO,
				"Couldn't create the SSH directory: "+s.Dir,
				"Check permissions on your home directory.")
		}
		if err := restrictOwnerOnly(s.Dir); err != nil {
			return errors.Wrap(err, errors.ErrIO,
				"Couldn't restrict permissions on "+s.Dir,
				"The directory should be mode 0700.")
		}
	}

	if s.HasKeyPair() {
		return nil
	}

	result, err := s.gcloud.CreateSSHKeys()
	if err != nil {
		return errors.Wrap(err, errors.ErrKeyGen,
			"No SSH key found and couldn't generate one", "")
	}
	if !result.Success() {
		return errors.WithDetail(errors.ErrKeyGen,
			"No SSH key found and couldn't generate one",
			result.StderrText())
	}

	return nil
}

// ReadPublicKey reads and trims the public key line, verifying it parses as
// an authorized-keys entry before it is shipped anywhere.
func (s *KeyStore) ReadPublicKey() (string, error) {
	data, err := os.ReadFile(s.PublicKeyPath())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO,
			"Couldn't read the public key: "+s.PublicKeyPath(),
			"Run gcssh again to regenerate the key pair.")
	}

	key := strings.TrimSpace(string(data))
	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key)); err != nil {
		return "", errors.Wrap(err, errors.ErrIO,
			"Public key file is not a valid authorized-keys entry: "+s.PublicKeyPath(),
			"Delete the corrupted pair and run gcssh again.")
	}

	return key, nil
}

// Fingerprint returns the SHA256 fingerprint of the stored public key, for
// display. Best-effort: returns "" when the key can't be read or parsed.
func (s *KeyStore) Fingerprint() string {
	data, err := os.ReadFile(s.PublicKeyPath())
	if err != nil {
		return ""
	}
	pk, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return ""
	}
	return ssh.FingerprintSHA256(pk)
}
