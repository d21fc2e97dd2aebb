package dto

// StatisticsResponse conteos totales por colección.
type StatisticsResponse struct {
	TotalUsers         int64 `json:"total_users"`
	TotalProducts      int64 `json:"total_products"`
	TotalCategories    int64 `json:"total_categories"`
	TotalSubcategories int64 `json:"total_subcategories"`
}
