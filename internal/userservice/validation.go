package userservice

import (
	"regexp"

	"bloglist/internal/common"
)

// minCredentialLength applies to both usernames and passwords.
const minCredentialLength = 3

var UsernameRX = regexp.MustCompile("^[a-zA-Z0-9]+$")

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, minCredentialLength, 25), "username", "must be between 3 and 25 characters long")
	v.Check(UsernameRX.MatchString(username), "username", "must only contain letters and numbers")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	// 72 bytes is the bcrypt input limit.
	v.Check(v.CheckStringLength(password, minCredentialLength, 72), "password", "must be between 3 and 72 characters long")
}

func validateName(v *common.Validator, name string) {
	v.Check(v.CheckStringLength(name, 0, 100), "name", "must not be more than 100 characters long")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
