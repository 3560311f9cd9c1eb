package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"log"

	"homeclean/internal/usecase/interfaces"
)

var ErrMissingCardSecret = errors.New("missing CARD_SECRET")
var ErrInvalidCiphertext = errors.New("invalid card ciphertext")

// AESCardEncryptor encrypts card fields at rest with AES-256-GCM. The key is
// derived from CARD_SECRET via SHA-256; the nonce is prepended to the
// ciphertext and the whole blob is stored base64-encoded.
type AESCardEncryptor struct {
	gcm cipher.AEAD
}

var _ interfaces.ICardEncryptor = (*AESCardEncryptor)(nil)

func NewAESCardEncryptor(secret string) (*AESCardEncryptor, error) {
	if secret == "" {
		log.Printf("[auth][card] missing CARD_SECRET")
		return nil, ErrMissingCardSecret
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AESCardEncryptor{gcm: gcm}, nil
}

func (e *AESCardEncryptor) Encrypt(plain string) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := e.gcm.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *AESCardEncryptor) Decrypt(enc string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(blob) < e.gcm.NonceSize() {
		return "", ErrInvalidCiphertext
	}
	nonce, sealed := blob[:e.gcm.NonceSize()], blob[e.gcm.NonceSize():]
	plain, err := e.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plain), nil
}
