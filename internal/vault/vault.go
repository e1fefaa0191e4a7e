// Package vault шифрует значения секретов перед записью в хранилище.
//
// Формат зашифрованного значения:
//
//	enc:v1:<base64(nonce || ciphertext)>
//
// Алгоритм XChaCha20-Poly1305, ключ 32 байта в base64.
// Значения без префикса считаются открытым текстом и возвращаются как есть,
// поэтому таблица с уже записанными открытыми секретами остаётся читаемой.
package vault

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

const sealedPrefix = "enc:v1:"

var (
	// ErrInvalidKey — ключ не base64 или неверной длины.
	ErrInvalidKey = errors.New("vault: invalid encryption key")

	// ErrNoKey — значение зашифровано, а ключ не настроен.
	ErrNoKey = errors.New("vault: value is sealed but no key is configured")

	// ErrCorrupted — зашифрованное значение повреждено или ключ не тот.
	ErrCorrupted = errors.New("vault: cannot open sealed value")
)

// Sealer шифрует и расшифровывает значения.
// nil *Sealer хранит значения открытым текстом.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer создаёт Sealer из base64-ключа.
// Пустой ключ даёт nil Sealer без ошибки.
func NewSealer(key string) (*Sealer, error) {
	if key == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, chacha20poly1305.KeySize, len(raw))
	}

	aead, err := chacha20poly1305.NewX(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &Sealer{aead: aead}, nil
}

// Enabled сообщает, включено ли шифрование.
func (s *Sealer) Enabled() bool {
	return s != nil
}

// Seal шифрует значение. Без ключа возвращает его без изменений.
func (s *Sealer) Seal(plain string) (string, error) {
	if s == nil {
		return plain, nil
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plain)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(plain), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open расшифровывает значение, записанное Seal.
func (s *Sealer) Open(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return stored, nil
	}
	if s == nil {
		return "", ErrNoKey
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < s.aead.NonceSize() {
		return "", ErrCorrupted
	}

	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrCorrupted
	}
	return string(plain), nil
}
