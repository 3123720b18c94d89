package kos

type GenderPolicy string

const (
	GenderAny    GenderPolicy = "any"
	GenderMale   GenderPolicy = "male"
	GenderFemale GenderPolicy = "female"
)

func (g GenderPolicy) String() string {
	return string(g)
}

func (g GenderPolicy) IsValid() bool {
	switch g {
	case GenderAny, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

func NewGenderPolicy(s string) (GenderPolicy, error) {
	if s == "" {
		return GenderAny, nil
	}
	policy := GenderPolicy(s)
	if !policy.IsValid() {
		return "", ErrInvalidGenderPolicy
	}
	return policy, nil
}
