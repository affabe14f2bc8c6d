package question

type ListResponse struct {
	Questions        []Question `json:"questions"`
	Total            int        `json:"total"`
	Facets           Facets     `json:"facets"`
	Filter           Filter     `json:"filter"`
	HasActiveFilters bool       `json:"hasActiveFilters"`
}
