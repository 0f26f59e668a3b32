package controllers

import (
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB        *gorm.DB
	employees *services.EmployeeService
}

func NewAdminController(db *gorm.DB, employees *services.EmployeeService) *AdminController {
	return &AdminController{DB: db, employees: employees}
}

// GET /admin/dashboard — headline counts
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var totalEmployees int64
	var openComplaints int64
	var complaintsToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Employee{}).Count(&totalEmployees).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Complaint{}).
		Where("status IN ?", []entity.ComplaintStatus{entity.StatusPending, entity.StatusInProgress}).
		Count(&openComplaints).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Complaint{}).
		Where("created_at >= ?", start).
		Count(&complaintsToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":      totalUsers,
		"totalEmployees":  totalEmployees,
		"openComplaints":  openComplaints,
		"complaintsToday": complaintsToday,
	})
}

type CreateEmployeeRequest struct {
	Name           string     `json:"name" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Password       string     `json:"password" binding:"required,min=6"`
	PhoneNumber    string     `json:"phoneNumber"`
	Address        string     `json:"address"`
	Position       string     `json:"position" binding:"required"`
	Specialization string     `json:"specialization"`
	JoinDate       *time.Time `json:"joinDate"`
}

// POST /admin/employees
func (ac *AdminController) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	emp, err := ac.employees.Create(&services.CreateEmployeeInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		Position:       req.Position,
		Specialization: req.Specialization,
		JoinDate:       req.JoinDate,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, emp)
}

// GET /admin/employees?position=&status=
func (ac *AdminController) ListEmployees(c *gin.Context) {
	var position *entity.EmployeePosition
	if v := c.Query("position"); v != "" {
		p, ok := entity.ParseEmployeePosition(v)
		if !ok {
			resp.BadRequest(c, "unknown position")
			return
		}
		position = &p
	}
	var status *entity.EmployeeStatus
	if v := c.Query("status"); v != "" {
		s := entity.EmployeeStatus(v)
		status = &s
	}

	items, err := ac.employees.List(position, status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /admin/employees/:id
func (ac *AdminController) GetEmployee(c *gin.Context) {
	emp, err := ac.employees.Get(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, emp)
}

type UpdateEmployeeRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

// PATCH /admin/employees/:id
func (ac *AdminController) UpdateEmployee(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	emp, err := ac.employees.Update(paramID(c), updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, emp)
}

// PATCH /admin/employees/:id/deactivate
func (ac *AdminController) DeactivateEmployee(c *gin.Context) {
	if err := ac.employees.Deactivate(paramID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.EmployeeInactive})
}

// DELETE /admin/employees/:id — soft delete only
func (ac *AdminController) DeleteEmployee(c *gin.Context) {
	if err := ac.employees.SoftDelete(paramID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
