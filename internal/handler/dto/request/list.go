package request

type ListQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"`
}
