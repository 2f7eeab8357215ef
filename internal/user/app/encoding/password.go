//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PasswordEncoder=PasswordEncoder"
package encoding

type PasswordEncoder interface {
	HashPassword(password string) (string, error)
	// MatchPassword reports false with a nil error when the password differs.
	MatchPassword(passwordHash, password string) (bool, error)
}
