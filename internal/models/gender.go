package models

// Gender of a profile owner, a searched partner or an ad's roommates.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)
