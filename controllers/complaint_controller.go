package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// ComplaintController serves the customer-facing complaint endpoints.
type ComplaintController struct {
	service *services.ComplaintService
	auth    *services.AuthService
}

func NewComplaintController(service *services.ComplaintService, auth *services.AuthService) *ComplaintController {
	return &ComplaintController{service: service, auth: auth}
}

type CreateComplaintRequest struct {
	// defaults to the logged-in customer's email
	RegisteredEmail      string `json:"registeredEmail"`
	ContactNumber        string `json:"contactNumber"`
	ComplaintDescription string `json:"complaintDescription"`
	ProductID            *uint  `json:"productId"`
	Priority             string `json:"priority"`
	PictureB64           string `json:"picture"`
	IdempotencyKey       string `json:"idempotencyKey"`
}

// POST /complaints
func (cc *ComplaintController) Create(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := req.RegisteredEmail
	if email == "" {
		user, err := cc.auth.GetProfile(utils.CurrentUserID(c))
		if err != nil {
			resp.Unauthorized(c, "unknown account")
			return
		}
		email = user.Email
	}

	result, err := cc.service.Intake(&services.IntakeInput{
		RegisteredEmail: email,
		ContactNumber:   req.ContactNumber,
		Description:     req.ComplaintDescription,
		ProductID:       req.ProductID,
		Priority:        req.Priority,
		PictureB64:      req.PictureB64,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, result)
}

// GET /complaints — list the caller's complaints
func (cc *ComplaintController) ListForMe(c *gin.Context) {
	user, err := cc.auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unknown account")
		return
	}

	items, total, err := cc.service.List(repository.ListFilter{
		CustomerEmail: user.Email,
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 20),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// GET /complaints/:id
func (cc *ComplaintController) Detail(c *gin.Context) {
	user, err := cc.auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unknown account")
		return
	}
	id := paramID(c)
	complaint, err := cc.service.DetailForCustomer(user.Email, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, complaint)
}

// GET /complaints/:id/history
func (cc *ComplaintController) History(c *gin.Context) {
	user, err := cc.auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unknown account")
		return
	}
	id := paramID(c)
	if _, err := cc.service.DetailForCustomer(user.Email, id); err != nil {
		writeServiceError(c, err)
		return
	}
	events, err := cc.service.History(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, events)
}

// PATCH /complaints/:id/cancel — a customer may cancel their own complaint,
// but only while it is still pending
func (cc *ComplaintController) Cancel(c *gin.Context) {
	user, err := cc.auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unknown account")
		return
	}
	ev, err := cc.service.CancelByCustomer(user.Email, paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, ev)
}

// ---- small param helpers ----

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

func queryInt(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return def
}
