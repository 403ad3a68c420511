package dto

type ResourceCreate struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
}

func (r ResourceCreate) Validate() error {
	return check(r)
}

type ResourceFilter struct {
	Type      string
	Available *bool
}
