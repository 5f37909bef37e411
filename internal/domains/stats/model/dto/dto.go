package dto

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SummaryResponse struct {
	Total      int             `json:"total"`
	Completed  int             `json:"completed"`
	Categories []CategoryCount `json:"categories"`
}
