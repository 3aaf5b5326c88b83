package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"robux-storefront/internal/catalog"
)

type catalogPackage struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Price   int64  `json:"price"`
	Popular bool   `json:"popular"`
}

type catalogCollectible struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Price       int64  `json:"price"`
	ImageRef    string `json:"imageRef"`
}

type catalogClass struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Price       int64  `json:"price"`
}

type catalogResponse struct {
	Packages     []catalogPackage     `json:"packages"`
	Collectibles []catalogCollectible `json:"collectibles"`
	Classes      []catalogClass       `json:"classes"`
}

func (h *handlers) getCatalog(c *gin.Context) {
	out := catalogResponse{
		Packages:     []catalogPackage{},
		Collectibles: []catalogCollectible{},
		Classes:      []catalogClass{},
	}
	for _, p := range catalog.Packages() {
		out.Packages = append(out.Packages, catalogPackage{
			ID:      p.ID(),
			Amount:  p.Amount,
			Price:   p.Price,
			Popular: p.Popular,
		})
	}
	for _, col := range catalog.Collectibles() {
		out.Collectibles = append(out.Collectibles, catalogCollectible{
			ID:          col.ID(),
			Name:        col.Name,
			DisplayName: col.DisplayName,
			Price:       col.Price,
			ImageRef:    col.ImageRef,
		})
	}
	for _, cl := range catalog.Classes() {
		out.Classes = append(out.Classes, catalogClass{
			ID:          cl.ID(),
			Name:        cl.Name,
			DisplayName: cl.DisplayName,
			Price:       cl.Price,
		})
	}
	c.JSON(http.StatusOK, out)
}
