package items

import "github.com/gin-gonic/gin"

// Item is the request body for the item routes.
// Optional fields are pointers so a missing field is distinguishable from a
// zero value; required on *float64 still admits a legitimate price of 0.
type Item struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Tax         *float64 `json:"tax"`
}

// fields returns all item attributes keyed by their wire names.
// Nil pointers marshal as null, matching the full-record response shape.
func (i *Item) fields() gin.H {
	return gin.H{
		"name":        i.Name,
		"description": i.Description,
		"price":       i.Price,
		"tax":         i.Tax,
	}
}
