package domain

// HolderType distinguishes who owns an account.
type HolderType string

const (
	HolderIndividual HolderType = "INDIVIDUAL"
	HolderJoint      HolderType = "JOINT"
	HolderCorporate  HolderType = "CORPORATE"
)

func HolderTypes() []HolderType {
	return []HolderType{HolderIndividual, HolderJoint, HolderCorporate}
}

func (h HolderType) IsValid() bool {
	switch h {
	case HolderIndividual, HolderJoint, HolderCorporate:
		return true
	}
	return false
}

func (h HolderType) String() string {
	return string(h)
}
