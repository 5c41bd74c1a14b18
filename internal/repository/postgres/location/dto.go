package location

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID      int     `json:"id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	ZipCode *string `json:"zip_code"`
}

type CreateRequest struct {
	Name    *string `json:"name" form:"name"`
	Address *string `json:"address" form:"address"`
	City    *string `json:"city" form:"city"`
	State   *string `json:"state" form:"state"`
	Country *string `json:"country" form:"country"`
	ZipCode *string `json:"zip_code" form:"zip_code"`
}

type UpdateRequest struct {
	ID      int     `json:"id" form:"id"`
	Name    *string `json:"name" form:"name"`
	Address *string `json:"address" form:"address"`
	City    *string `json:"city" form:"city"`
	State   *string `json:"state" form:"state"`
	Country *string `json:"country" form:"country"`
	ZipCode *string `json:"zip_code" form:"zip_code"`
}
