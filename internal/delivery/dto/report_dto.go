package dto

// ReportQuery holds the raw report parameters. Page and PageSize stay nil
// when the client omits them.
type ReportQuery struct {
	SortColumn string `json:"sortColumn" label:"Sort column"`
	SortOrder  string `json:"sortOrder" label:"Sort order" validate:"omitempty,oneof=asc desc"`
	Page       *int   `json:"page" label:"Page" validate:"omitempty,gte=1"`
	PageSize   *int   `json:"pageSize" label:"Page size" validate:"omitempty,gte=1,lte=200"`
}

// IDParam is a record identifier taken from the request path.
type IDParam struct {
	ID int `json:"id" label:"Id" validate:"gte=0"`
}
