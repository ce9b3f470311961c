package domain

// PasswordHasher guards account credentials. The stored hash encodes its own
// parameters, so VerifyPassword keeps working after a cost upgrade.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
