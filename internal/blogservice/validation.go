package blogservice

import "bloglist/internal/common"

// The store schema enforces the same minimums; validating here keeps the
// error shape consistent with the rest of the API.
const (
	minTitleLength = 2
	minURLLength   = 2
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, minTitleLength, 200), "title", "must be between 2 and 200 characters long")
}

func validateURL(v *common.Validator, url string) {
	v.Check(url != "", "url", "must be provided")
	v.Check(v.CheckStringLength(url, minURLLength, 500), "url", "must be between 2 and 500 characters long")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "must not be negative")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
