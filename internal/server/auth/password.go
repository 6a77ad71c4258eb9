package auth

import "golang.org/x/crypto/bcrypt"

// MinBcryptCost is the lowest cost factor accepted for new hashes.
const MinBcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// Costs below MinBcryptCost are raised to it.
func HashPassword(password string, cost int) (string, error) {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
