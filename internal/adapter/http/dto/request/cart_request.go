package request

// Index is a pointer so a missing index fails binding instead of silently
// addressing the first line.

type CartQuantityRequest struct {
	Items string `json:"items"`
	Index *int   `json:"index" binding:"required"`
	Delta int    `json:"delta"`
}

type CartRemoveRequest struct {
	Items string `json:"items"`
	Index *int   `json:"index" binding:"required"`
}
