package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MechanicController struct {
	service *services.MechanicService
	auth    *services.AuthService
}

func NewMechanicController(service *services.MechanicService, auth *services.AuthService) *MechanicController {
	return &MechanicController{service: service, auth: auth}
}

// GET /partner/mechanic/profile
func (mc *MechanicController) Profile(c *gin.Context) {
	m, err := mc.service.ByUserID(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /partner/mechanic/work — open assignments
func (mc *MechanicController) Work(c *gin.Context) {
	items, err := mc.service.CurrentWork(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /partner/mechanic/histories — finished assignments
func (mc *MechanicController) Histories(c *gin.Context) {
	items, err := mc.service.Histories(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /partner/mechanic/availability
func (mc *MechanicController) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.service.SetAvailability(utils.CurrentUserID(c), *req.Available); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *req.Available})
}

type FinishJobRequest struct {
	// "resolved" (or "completed") closes the job; "cancelled" abandons it
	Status string `json:"status" binding:"required"`
}

// PATCH /partner/mechanic/jobs/:id/finish
func (mc *MechanicController) FinishJob(c *gin.Context) {
	var req FinishJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	target, ok := entity.ParseComplaintStatus(req.Status)
	if !ok || !target.Terminal() {
		resp.BadRequest(c, "status must be resolved or cancelled")
		return
	}

	actor := "mechanic"
	if user, err := mc.auth.GetProfile(utils.CurrentUserID(c)); err == nil {
		actor = user.Email
	}

	ev, err := mc.service.FinishJob(utils.CurrentUserID(c), paramID(c), target, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, ev)
}
