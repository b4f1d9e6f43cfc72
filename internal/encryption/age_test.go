package encryption

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"kb-go/internal/config"
)

func newTestAgeEncryptor(t *testing.T) *AgeEncryptor {
	t.Helper()
	dir := t.TempDir()
	return NewAgeEncryptor(config.EncryptionConfig{
		PublicKeyPath:  filepath.Join(dir, "keys", "kb.pub"),
		PrivateKeyPath: filepath.Join(dir, "keys", "kb.key"),
	})
}

func TestAgeEncryptor_Setup(t *testing.T) {
	enc := newTestAgeEncryptor(t)

	if enc.IsConfigured() {
		t.Fatal("IsConfigured() = true before Setup")
	}
	if err := enc.Setup("test-passphrase"); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !enc.IsConfigured() {
		t.Error("IsConfigured() = false after Setup")
	}

	// The public key is plaintext; the private key is not.
	pub, err := os.ReadFile(enc.publicKeyPath)
	if err != nil {
		t.Fatalf("reading public key: %v", err)
	}
	if !bytes.HasPrefix(pub, []byte("age1")) {
		t.Errorf("public key = %q, want an age recipient", pub)
	}

	priv, err := os.ReadFile(enc.privateKeyPath)
	if err != nil {
		t.Fatalf("reading private key: %v", err)
	}
	if bytes.Contains(priv, []byte("AGE-SECRET-KEY-")) {
		t.Error("private key stored in plaintext")
	}
}

func TestAgeEncryptor_RoundTrip(t *testing.T) {
	enc := newTestAgeEncryptor(t)
	if err := enc.Setup("test-passphrase"); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	plaintext := []byte(`{"columns":[{"id":"column-1"}]}`)
	var ciphertext bytes.Buffer
	if err := enc.Encrypt(bytes.NewReader(plaintext), &ciphertext); err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if bytes.Contains(ciphertext.Bytes(), []byte("column-1")) {
		t.Error("ciphertext leaks plaintext")
	}

	dec, err := enc.Unlock("test-passphrase")
	if err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	var out bytes.Buffer
	if err := dec.Decrypt(bytes.NewReader(ciphertext.Bytes()), &out); err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(out.Bytes(), plaintext) {
		t.Errorf("round-trip = %q, want %q", out.Bytes(), plaintext)
	}
}

func TestAgeEncryptor_WrongPassphrase(t *testing.T) {
	enc := newTestAgeEncryptor(t)
	if err := enc.Setup("correct"); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	if _, err := enc.Unlock("wrong"); err == nil {
		t.Error("Unlock() with wrong passphrase error = nil, want error")
	}
}

func TestNewEncryptorFromConfig(t *testing.T) {
	tests := []struct {
		encType string
		wantErr bool
	}{
		{"age", false},
		{"", false},
		{"test", false},
		{"rot13", true},
	}

	for _, tt := range tests {
		t.Run("type "+tt.encType, func(t *testing.T) {
			_, err := NewEncryptorFromConfig(config.EncryptionConfig{Type: tt.encType})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEncryptorFromConfig(%q) error = %v, wantErr %v", tt.encType, err, tt.wantErr)
			}
		})
	}
}
