package department

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}
