package dto

type ClubCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (c ClubCreate) Validate() error {
	return check(c)
}
