package dto

// CreateArticleRequest alta de artículo.
type CreateArticleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateArticleRequest modificación de artículo.
type UpdateArticleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ArticleResponse representación de un artículo en respuestas.
type ArticleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
