// Package security implements credential hashing with Argon2id. Hashes are
// self-describing strings in the standard "$argon2id$v=19$..." format, so
// parameters can be tuned without invalidating stored credentials.
package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash signals a malformed Argon2id hash string.
var ErrInvalidHash = errors.New("invalid argon2id hash")

// Params are the Argon2id cost parameters embedded into each hash.
type Params struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLen     uint32
	KeyLen      uint32
}

// DefaultParams follows the RFC 9106 low-memory recommendation.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 4,
		SaltLen:     16,
		KeyLen:      32,
	}
}

// Hasher hashes and verifies passwords. The zero value is not usable; create
// one with NewHasher.
type Hasher struct {
	params Params
}

// NewHasher creates a Hasher with the default cost parameters.
func NewHasher() *Hasher {
	return &Hasher{params: DefaultParams()}
}

// NewHasherWithParams creates a Hasher with explicit cost parameters.
func NewHasherWithParams(params Params) *Hasher {
	return &Hasher{params: params}
}

// Hash returns a formatted Argon2id hash for the password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		h.params.Memory, h.params.Time, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether the password matches the encoded hash. The encoded
// parameters take precedence over the hasher's own, so old hashes verify
// after a cost change.
func (h *Hasher) Verify(password, encoded string) (bool, error) {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Parallelism, params.KeyLen)

	return subtle.ConstantTimeCompare(key, computed) == 1, nil
}

func decodeHash(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var params Params
	for _, field := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return Params{}, nil, nil, ErrInvalidHash
		}
		switch name {
		case "m":
			v, parseErr := strconv.ParseUint(value, 10, 32)
			if parseErr != nil {
				return Params{}, nil, nil, ErrInvalidHash
			}
			params.Memory = uint32(v)
		case "t":
			v, parseErr := strconv.ParseUint(value, 10, 32)
			if parseErr != nil {
				return Params{}, nil, nil, ErrInvalidHash
			}
			params.Time = uint32(v)
		case "p":
			v, parseErr := strconv.ParseUint(value, 10, 8)
			if parseErr != nil {
				return Params{}, nil, nil, ErrInvalidHash
			}
			params.Parallelism = uint8(v)
		default:
			return Params{}, nil, nil, ErrInvalidHash
		}
	}

	if params.Memory == 0 || params.Time == 0 || params.Parallelism == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}
