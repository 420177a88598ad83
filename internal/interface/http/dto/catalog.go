package dto

// GetBookByTitleRequest resolves a catalog entry by its exact title.
type GetBookByTitleRequest struct {
	Title string `json:"title" example:"Good Omens"`
}

// SearchCatalogRequest selects catalog entries by author. Both fields are
// optional; an empty query returns the whole catalog.
type SearchCatalogRequest struct {
	AuthorFirstName string `json:"author_first_name" example:"Terry"`
	AuthorLastName  string `json:"author_last_name" example:"Pratchett"`
}

// BookDetailsResponse is one catalog title with availability.
type BookDetailsResponse struct {
	ISBN            string `json:"isbn" example:"978-0060853976"`
	Title           string `json:"title" example:"Good Omens"`
	AuthorFirstName string `json:"author_first_name" example:"Terry"`
	AuthorLastName  string `json:"author_last_name" example:"Pratchett"`
	TotalCopies     int    `json:"total_copies" example:"3"`
	AvailableCopies int    `json:"available_copies" example:"2"`
}
