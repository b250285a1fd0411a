package usecasecontract

// IValidator validates member-supplied input before it reaches the ledger.
type IValidator interface {
	ValidateName(name string) error
	ValidateCustomTags(tags []string) error
	ValidateAvatar(avatar string) error
}
