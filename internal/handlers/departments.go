package handlers

import (
	"net/http"
	"strconv"

	"github.com/lexablackstar/HealthCheckApp/internal/authz"
	"github.com/lexablackstar/HealthCheckApp/internal/models"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *services.DepartmentService
	userService       *services.UserService
}

func NewDepartmentHandler(departmentService *services.DepartmentService, userService *services.UserService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService, userService: userService}
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"Engineering"`
	// LeaderID is honored only for Admin callers, who may assign any user
	// holding the Department Leader role as owner.
	LeaderID uint `json:"leader_id" example:"7"`
}

type UpdateDepartmentRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100" example:"Engineering"`
	TeamIDs []uint `json:"team_ids" example:"1,2"`
}

// ListDepartments godoc
// @Summary      List departments led by the caller
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Department
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	caller, ok := requireAction(c, authz.ManageDepartments)
	if !ok {
		return
	}

	departments, err := h.departmentService.ListDepartmentsByLeader(caller.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, departments)
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateDepartmentRequest true "Department data"
// @Success      201 {object} Department
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	caller, ok := requireAction(c, authz.CreateDepartment)
	if !ok {
		return
	}

	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	leaderID := caller.UserID
	if caller.Role == models.RoleAdmin && req.LeaderID != 0 {
		profile, err := h.userService.GetProfile(req.LeaderID)
		if err != nil || profile.Role != models.RoleDepartmentLeader {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "leader must hold the Department Leader role"})
			return
		}
		leaderID = req.LeaderID
	}

	department, err := h.departmentService.CreateDepartment(req.Name, leaderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, department)
}

// UpdateDepartment godoc
// @Summary      Rename a department and replace its team set
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Department ID"
// @Param        request body UpdateDepartmentRequest true "Department data"
// @Success      200 {object} Department
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	if _, ok := requireAction(c, authz.EditDepartment); !ok {
		return
	}

	departmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid department id"})
		return
	}

	var req UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	department, err := h.departmentService.UpdateDepartment(uint(departmentID), req.Name, req.TeamIDs)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment godoc
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Department ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	if _, ok := requireAction(c, authz.DeleteDepartment); !ok {
		return
	}

	departmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid department id"})
		return
	}

	if err := h.departmentService.DeleteDepartment(uint(departmentID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "department deleted"})
}
