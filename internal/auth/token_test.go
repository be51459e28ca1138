package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, "brandmate-test")
	userID := uuid.New()

	token, err := tm.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, "brandmate-test")

	token, err := tm.Issue(uuid.New())
	require.NoError(t, err)

	_, err = tm.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager(testSecret, "brandmate-test")
	verifier := NewTokenManager("another-secret-another-secret-32", "brandmate-test")

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	tm := NewTokenManager(testSecret, "brandmate-test")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: uuid.New().String(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsNonUUIDSubject(t *testing.T) {
	tm := NewTokenManager(testSecret, "brandmate-test")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "42"})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCarriesNoExpiry(t *testing.T) {
	tm := NewTokenManager(testSecret, "brandmate-test")

	token, err := tm.Issue(uuid.New())
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, CheckPassword(hash, "secret1"))
	require.False(t, CheckPassword(hash, "secret2"))
}
