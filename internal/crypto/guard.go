// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-steam-guard/models"
)

// codeAlphabet is the fixed 26-symbol alphabet Steam Guard codes are drawn
// from. Visually ambiguous characters (0/O, 1/I, ...) are excluded.
const codeAlphabet = "23456789BCDFGHJKMNPQRTVWXY"

const (
	codeLength   = 5
	windowLength = 30 // seconds per code window
)

// guardService is the private implementation of [GuardService].
type guardService struct {
}

// NewGuardService constructs a [GuardService].
func NewGuardService() GuardService {
	return &guardService{}
}

// GenerateCode implements [GuardService]. The derivation must match the
// platform's authenticator bit-for-bit:
//
//  1. counter = unixTime / 30 as an 8-byte big-endian integer;
//  2. digest  = HMAC-SHA1(sharedSecret, counter);
//  3. offset  = low 4 bits of digest[19];
//  4. v       = digest[offset..offset+4) big-endian, high bit masked off;
//  5. emit 5 characters, each v mod 26 into the alphabet, then v /= 26.
//
// Characters come out least-significant digit first. FractionRemaining is
// (30 - unixTime mod 30) / 30: a window boundary yields 1.0 (the whole
// window lies ahead), just before the next boundary it approaches 0.
func (g *guardService) GenerateCode(sharedSecret string, unixTime int64) (models.CodeResult, error) {
	secret, err := base64.StdEncoding.DecodeString(sharedSecret)
	if err != nil {
		return models.CodeResult{}, fmt.Errorf("decode shared secret: %w", ErrInvalidSecret)
	}

	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], uint64(unixTime/windowLength))

	mac := hmac.New(sha1.New, secret)
	mac.Write(counter[:])
	digest := mac.Sum(nil)

	offset := digest[len(digest)-1] & 0x0F
	v := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7FFFFFFF

	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[v%uint32(len(codeAlphabet))]
		v /= uint32(len(codeAlphabet))
	}

	return models.CodeResult{
		Code:              string(code),
		FractionRemaining: float64(windowLength-unixTime%windowLength) / windowLength,
	}, nil
}

// SignConfirmation implements [GuardService]. It computes HMAC-SHA1 over the
// 8-byte big-endian unixTime concatenated with the UTF-8 bytes of tag, keyed
// with the decoded identity secret, and returns the full digest
// base64-encoded. Unlike GenerateCode there is no truncation or alphabet
// mapping; the endpoints verify the raw digest.
func (g *guardService) SignConfirmation(identitySecret string, unixTime int64, tag string) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(identitySecret)
	if err != nil {
		return "", fmt.Errorf("decode identity secret: %w", ErrInvalidSecret)
	}

	payload := make([]byte, 8, 8+len(tag))
	binary.BigEndian.PutUint64(payload, uint64(unixTime))
	payload = append(payload, tag...)

	mac := hmac.New(sha1.New, secret)
	mac.Write(payload)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
