package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a signup password. OAuth-provisioned accounts
// never go through here and keep an empty hash.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
