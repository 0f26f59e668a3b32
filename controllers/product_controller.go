package controllers

import (
	"time"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.AuthService
}

func NewProductController(service *services.AuthService) *ProductController {
	return &ProductController{service: service}
}

type RegisterProductRequest struct {
	Name           string    `json:"name" binding:"required"`
	Category       string    `json:"category"`
	PurchaseDate   time.Time `json:"purchaseDate" binding:"required"`
	WarrantyMonths int       `json:"warrantyMonths"`
}

// POST /products — customer registers a purchase
func (p *ProductController) Create(c *gin.Context) {
	var req RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := p.service.RegisterProduct(utils.CurrentUserID(c),
		req.Name, req.Category, req.PurchaseDate, req.WarrantyMonths)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, product)
}

// GET /products
func (p *ProductController) List(c *gin.Context) {
	products, err := p.service.ListProducts(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}
