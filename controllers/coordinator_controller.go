package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// CoordinatorController serves the complaint-routing desk: filtered views,
// mechanic assignment, status moves, priority, soft delete.
type CoordinatorController struct {
	service    *services.ComplaintService
	assignment *services.AssignmentService
	auth       *services.AuthService
	mechRepo   *repository.MechanicRepository
}

func NewCoordinatorController(
	service *services.ComplaintService,
	assignment *services.AssignmentService,
	auth *services.AuthService,
	mechRepo *repository.MechanicRepository,
) *CoordinatorController {
	return &CoordinatorController{service: service, assignment: assignment, auth: auth, mechRepo: mechRepo}
}

// GET /coordinator/complaints?status=&priority=&mechanicId=&page=&limit=
func (cc *CoordinatorController) List(c *gin.Context) {
	f := repository.ListFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	}
	if v := c.Query("status"); v != "" {
		st, ok := entity.ParseComplaintStatus(v)
		if !ok {
			resp.BadRequest(c, "unknown status")
			return
		}
		f.Status = &st
	}
	if v := c.Query("priority"); v != "" {
		p, ok := entity.ParseComplaintPriority(v)
		if !ok {
			resp.BadRequest(c, "unknown priority")
			return
		}
		f.Priority = &p
	}
	if v := queryInt(c, "mechanicId", 0); v > 0 {
		id := uint(v)
		f.MechanicID = &id
	}

	items, total, err := cc.service.List(f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /coordinator/complaints/:id
func (cc *CoordinatorController) Detail(c *gin.Context) {
	complaint, err := cc.service.Detail(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, complaint)
}

// GET /coordinator/complaints/:id/history
func (cc *CoordinatorController) History(c *gin.Context) {
	events, err := cc.service.History(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, events)
}

type AssignRequest struct {
	// optional override; defaults to the product category
	SkillTag string `json:"skillTag"`
}

// POST /coordinator/complaints/:id/assign
func (cc *CoordinatorController) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		resp.BadRequest(c, err.Error())
		return
	}

	actor := cc.actorEmail(c)
	complaint, err := cc.assignment.Assign(paramID(c), req.SkillTag, actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, complaint)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /coordinator/complaints/:id/status
func (cc *CoordinatorController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	target, ok := entity.ParseComplaintStatus(req.Status)
	if !ok {
		resp.BadRequest(c, "unknown status")
		return
	}

	ev, err := cc.service.RecordTransition(paramID(c), target, cc.actorEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, ev)
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

// PATCH /coordinator/complaints/:id/priority
func (cc *CoordinatorController) UpdatePriority(c *gin.Context) {
	var req UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, ok := entity.ParseComplaintPriority(req.Priority)
	if !ok {
		resp.BadRequest(c, "unknown priority")
		return
	}
	if err := cc.service.UpdatePriority(paramID(c), p); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"priority": p})
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// POST /coordinator/complaints/:id/notes
func (cc *CoordinatorController) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.service.AddNote(paramID(c), req.Note); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"noted": true})
}

// DELETE /coordinator/complaints/:id — soft delete, history kept for audit
func (cc *CoordinatorController) Delete(c *gin.Context) {
	if err := cc.service.SoftDelete(paramID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /coordinator/mechanics
func (cc *CoordinatorController) Mechanics(c *gin.Context) {
	mechanics, err := cc.mechRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mechanics)
}

func (cc *CoordinatorController) actorEmail(c *gin.Context) string {
	if user, err := cc.auth.GetProfile(utils.CurrentUserID(c)); err == nil {
		return user.Email
	}
	return "coordinator"
}
