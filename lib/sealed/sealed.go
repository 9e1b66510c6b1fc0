// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sealed

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"filippo.io/age"

	"github.com/bureau-foundation/flagkit/lib/secret"
)

// Keypair holds an age x25519 keypair. The private key
// (AGE-SECRET-KEY-1...) lives in a secret.Buffer and must never be
// logged or passed on a command line. The public key (age1...) is safe
// to publish.
type Keypair struct {
	PrivateKey *secret.Buffer
	PublicKey  string
}

// Close releases the private key memory. Idempotent.
func (k *Keypair) Close() error {
	if k.PrivateKey != nil {
		return k.PrivateKey.Close()
	}
	return nil
}

// GenerateKeypair generates a new age x25519 keypair. The caller must
// Close it.
func GenerateKeypair() (*Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating age keypair: %w", err)
	}

	// identity.String() leaves one heap copy behind; the mmap buffer is
	// the copy that outlives this call.
	privateKey, err := secret.NewFromBytes([]byte(identity.String()))
	if err != nil {
		return nil, fmt.Errorf("protecting private key: %w", err)
	}

	return &Keypair{
		PrivateKey: privateKey,
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// WriteIdentity writes keypair in the age-keygen file format: two
// comment lines followed by the private key.
func WriteIdentity(output io.Writer, keypair *Keypair, created time.Time) error {
	header := fmt.Sprintf("# created: %s\n# public key: %s\n",
		created.UTC().Format(time.RFC3339), keypair.PublicKey)
	if _, err := io.WriteString(output, header); err != nil {
		return err
	}
	if _, err := output.Write(keypair.PrivateKey.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(output, "\n")
	return err
}

// Seal encrypts everything read from source to the given recipients
// (age1... public keys) and writes the ciphertext to destination. At
// least one recipient is required.
func Seal(destination io.Writer, source io.Reader, recipientKeys []string) error {
	if len(recipientKeys) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	writer, err := age.Encrypt(destination, recipients...)
	if err != nil {
		return fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := io.Copy(writer, source); err != nil {
		return fmt.Errorf("sealing plaintext: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing age encryption: %w", err)
	}
	return nil
}

// Open returns a reader of the plaintext sealed in source. identity
// holds the contents of an identity file (comment lines allowed) and
// is borrowed, not closed. The header is authenticated before Open
// returns, so a wrong identity fails here rather than mid-stream.
func Open(source io.Reader, identity *secret.Buffer) (io.Reader, error) {
	identities, err := age.ParseIdentities(bytes.NewReader(identity.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("parsing identity: %w", err)
	}

	reader, err := age.Decrypt(source, identities...)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	return reader, nil
}

// ParsePublicKey validates an age x25519 public key.
func ParsePublicKey(publicKey string) error {
	if _, err := age.ParseX25519Recipient(publicKey); err != nil {
		return fmt.Errorf("invalid age public key: %w", err)
	}
	return nil
}
