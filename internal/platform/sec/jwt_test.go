// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/platform/sec"
)

const testIssuer = "kiosk.app"

func newKeyPair(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	return privateKey, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func sign(t *testing.T, key *rsa.PrivateKey, claims sec.AuthClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(userID, issuer string, expiresIn time.Duration) sec.AuthClaims {
	now := time.Now()
	return sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		UserID: userID,
	}
}

/*
TestVerifyToken covers valid, expired, foreign-issuer and foreign-key tokens.
*/
func TestVerifyToken(t *testing.T) {
	privateKey, publicPEM := newKeyPair(t)
	otherKey, _ := newKeyPair(t)

	verifier, err := sec.NewTokenVerifier(publicPEM, testIssuer)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", sign(t, privateKey, claimsFor("user-1", testIssuer, time.Hour)), false},
		{"expired", sign(t, privateKey, claimsFor("user-1", testIssuer, -time.Hour)), true},
		{"wrong_issuer", sign(t, privateKey, claimsFor("user-1", "evil.example", time.Hour)), true},
		{"wrong_key", sign(t, otherKey, claimsFor("user-1", testIssuer, time.Hour)), true},
		{"garbage", "not.a.token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
		})
	}
}

/*
TestVerifyToken_SubjectFallback ensures the subject is used when uid is absent.
*/
func TestVerifyToken_SubjectFallback(t *testing.T) {
	privateKey, publicPEM := newKeyPair(t)
	verifier, err := sec.NewTokenVerifier(publicPEM, testIssuer)
	require.NoError(t, err)

	claims := claimsFor("subject-7", testIssuer, time.Hour)
	claims.UserID = ""

	verified, err := verifier.VerifyToken(sign(t, privateKey, claims))
	require.NoError(t, err)
	assert.Equal(t, "subject-7", verified.UserID)

	anonymous := claimsFor("", testIssuer, time.Hour)
	_, err = verifier.VerifyToken(sign(t, privateKey, anonymous))
	assert.ErrorIs(t, err, sec.ErrMissingSubject)
}

/*
TestNewTokenVerifier_BadKey rejects malformed PEM input.
*/
func TestNewTokenVerifier_BadKey(t *testing.T) {
	_, err := sec.NewTokenVerifier([]byte("-----BEGIN NOTHING-----"), testIssuer)
	assert.Error(t, err)

	_, err = sec.NewTokenVerifierFromFile("/nonexistent/jwt.pub", testIssuer)
	assert.Error(t, err)
}
