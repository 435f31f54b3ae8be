// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// envelopeVersion is the only wire format version understood so far.
const envelopeVersion byte = 1

// fixed part of the header: version, algorithm, argon time, argon memory,
// argon threads
const fixedHeaderLen = 1 + 1 + 4 + 4 + 1

// Algorithm identifies the AEAD used inside an envelope.
type Algorithm byte

const (
	// AlgorithmAES256GCM is AES-256 in Galois/Counter Mode, 12-byte nonce.
	AlgorithmAES256GCM Algorithm = 1

	// AlgorithmXChaCha20Poly1305 is XChaCha20-Poly1305, 24-byte nonce.
	AlgorithmXChaCha20Poly1305 Algorithm = 2
)

// String returns the configuration name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAES256GCM:
		return "aes-256-gcm"
	case AlgorithmXChaCha20Poly1305:
		return "xchacha20-poly1305"
	default:
		return fmt.Sprintf("algorithm(%d)", byte(a))
	}
}

func (a Algorithm) valid() bool {
	return a == AlgorithmAES256GCM || a == AlgorithmXChaCha20Poly1305
}

// ParseAlgorithm maps a configuration name to an [Algorithm].
// The empty string selects [AlgorithmAES256GCM].
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "aes-256-gcm", "aes256gcm":
		return AlgorithmAES256GCM, nil
	case "xchacha20-poly1305", "xchacha20poly1305":
		return AlgorithmXChaCha20Poly1305, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// KDFParams are the Argon2id parameters a key was derived with.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// Envelope is the decoded form of an encrypted private key.
//
// Wire format:
//
//	version(1) | algorithm(1) | time(4) | memory(4) | threads(1) |
//	saltLen(1) | salt | nonceLen(1) | nonce | ciphertext ‖ tag
type Envelope struct {
	Algorithm  Algorithm
	KDF        KDFParams
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// header returns everything up to and including the salt. It is
// authenticated as additional data so KDF parameters cannot be swapped.
func (e Envelope) header() []byte {
	buf := make([]byte, 0, fixedHeaderLen+1+len(e.Salt))
	buf = append(buf, envelopeVersion, byte(e.Algorithm))
	buf = binary.BigEndian.AppendUint32(buf, e.KDF.Time)
	buf = binary.BigEndian.AppendUint32(buf, e.KDF.Memory)
	buf = append(buf, e.KDF.Threads, byte(len(e.Salt)))
	return append(buf, e.Salt...)
}

func (e Envelope) additionalData(associatedData []byte) []byte {
	return append(e.header(), associatedData...)
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (e Envelope) MarshalBinary() ([]byte, error) {
	if len(e.Salt) > 255 || len(e.Nonce) > 255 {
		return nil, fmt.Errorf("%w: salt or nonce too long", ErrMalformedEnvelope)
	}

	buf := e.header()
	buf = append(buf, byte(len(e.Nonce)))
	buf = append(buf, e.Nonce...)
	return append(buf, e.Ciphertext...), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. The resulting
// envelope does not share memory with data.
func (e *Envelope) UnmarshalBinary(data []byte) error {
	if len(data) < fixedHeaderLen+1 {
		return fmt.Errorf("%w: %d bytes is too short", ErrMalformedEnvelope, len(data))
	}
	if data[0] != envelopeVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedEnvelope, data[0])
	}

	alg := Algorithm(data[1])
	if !alg.valid() {
		return fmt.Errorf("%w: %w %d", ErrMalformedEnvelope, ErrUnknownAlgorithm, data[1])
	}

	kdf := KDFParams{
		Time:    binary.BigEndian.Uint32(data[2:6]),
		Memory:  binary.BigEndian.Uint32(data[6:10]),
		Threads: data[10],
	}
	if err := kdf.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	rest := data[fixedHeaderLen:]
	salt, rest, ok := readField(rest)
	if !ok {
		return fmt.Errorf("%w: truncated salt", ErrMalformedEnvelope)
	}
	nonce, rest, ok := readField(rest)
	if !ok {
		return fmt.Errorf("%w: truncated nonce", ErrMalformedEnvelope)
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing ciphertext", ErrMalformedEnvelope)
	}

	*e = Envelope{
		Algorithm:  alg,
		KDF:        kdf,
		Salt:       append([]byte(nil), salt...),
		Nonce:      append([]byte(nil), nonce...),
		Ciphertext: append([]byte(nil), rest...),
	}

	return nil
}

// readField reads a one-byte length prefix followed by that many bytes.
func readField(b []byte) (field, rest []byte, ok bool) {
	if len(b) < 1 {
		return nil, nil, false
	}
	n := int(b[0])
	if len(b) < 1+n {
		return nil, nil, false
	}
	return b[1 : 1+n], b[1+n:], true
}
