package auth

import "golang.org/x/crypto/bcrypt"

// hashCost matches the salt factor the storefront has always used.
const hashCost = 10

// HashPassword derives a salted one-way digest from a plaintext password.
// It is called once per password set or change, never on every save.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// A malformed digest is a verification failure, not an error.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
