package response

import "ecopoints/internal/usecase/queries"

type ProductResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Points        int64   `json:"points"`
	OriginalPrice string  `json:"original_price"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image,omitempty"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		Points:        v.Points,
		OriginalPrice: v.OriginalPrice,
		Category:      v.Category,
		Rating:        v.Rating,
		Image:         v.Image,
	}
}

func FromProductViews(vs []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, len(vs))
	for i, v := range vs {
		out[i] = FromProductView(v)
	}
	return out
}
