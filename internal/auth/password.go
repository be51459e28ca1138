package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when the user lookup misses, so a login
// attempt costs one bcrypt comparison whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("brandmate-dummy-password"), bcrypt.DefaultCost)

// HashPassword generates a salted bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnComparison performs a throwaway hash comparison. Called on the
// unknown-identifier path so it is not distinguishable from a wrong
// password by response timing.
func BurnComparison(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
