package profile

import (
	"strings"
	"time"
)

// Gender is the onboarding-collected gender value.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Parse normalizes a raw gender string. Unrecognized values are
// returned as-is with ok=false; callers decide whether to reject.
func Parse(raw string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(raw)))
	return g, g == GenderMale || g == GenderFemale
}

// Profile is the onboarding record for a signed-in user. It is created
// exactly once per email and never updated afterwards.
type Profile struct {
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Gender    Gender    `json:"gender"`
	DOB       time.Time `json:"dob"`
	CreatedAt time.Time `json:"createdAt"`
}
