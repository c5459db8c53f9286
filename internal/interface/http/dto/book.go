package dto

// CreateBookRequest is the POST /books body. isbn1013 and pubyear are
// custom validators registered by pkg/validator.
type CreateBookRequest struct {
	Title              string `json:"title" binding:"required,min=1,max=500" example:"1984"`
	Author             string `json:"author" binding:"required,min=1,max=200" example:"George Orwell"`
	ISBN               string `json:"isbn" binding:"required,isbn1013" example:"9780451524935"`
	PublishedYear      int    `json:"publishedYear" binding:"required,pubyear" example:"1949"`
	AvailabilityStatus string `json:"availabilityStatus" binding:"omitempty,oneof=Available Borrowed" example:"Available"`
}

// UpdateBookRequest is the PUT /books/{id} body; every field is optional and
// omitted fields are left unchanged.
type UpdateBookRequest struct {
	Title              *string `json:"title" binding:"omitempty,min=1,max=500"`
	Author             *string `json:"author" binding:"omitempty,min=1,max=200"`
	ISBN               *string `json:"isbn" binding:"omitempty,isbn1013"`
	PublishedYear      *int    `json:"publishedYear" binding:"omitempty,pubyear"`
	AvailabilityStatus *string `json:"availabilityStatus" binding:"omitempty,oneof=Available Borrowed"`
}

// ListBooksQuery is the GET /books query string.
type ListBooksQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Author        string `form:"author" binding:"omitempty,max=200"`
	PublishedYear int    `form:"publishedYear" binding:"omitempty,pubyear"`
}

// SearchBooksQuery is the GET /books/search query string; q is required.
type SearchBooksQuery struct {
	Q     string `form:"q" binding:"required,min=1"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
