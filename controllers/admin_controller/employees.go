package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/RonP3B/medisearch-backend/config"
	"github.com/RonP3B/medisearch-backend/middleware"
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/RonP3B/medisearch-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetEmployees godoc
// @Summary List company employees
// @Description Returns the Admin users of the caller's company
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/employees [get]
func GetEmployees(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts have employees"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var employees []models.User
	err := config.Gorm.WithContext(ctx).
		Where("company_id = ? AND role = ?", companyID, models.RoleAdmin).
		Order("created_at DESC").
		Find(&employees).Error
	if err != nil {
		log.Printf("[admin.employees] ERROR loading employees err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load employees"))
		return
	}

	responses := make([]models.UserResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employees[i].Response())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Employees retrieved successfully", responses))
}

// RegisterEmployee godoc
// @Summary Register an employee
// @Description Creates an Admin user under the caller's company and emails the invite
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeRequest true "Employee payload"
// @Success 201 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/employees [post]
func RegisterEmployee(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts can register employees"))
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid employee payload"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: the email must be free
	var existing models.User
	err := config.Gorm.WithContext(ctx).Select("id").First(&existing, "email = ?", req.Email).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email is already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register employee"))
		return
	}

	var company models.Company
	if err := config.Gorm.WithContext(ctx).First(&company, "id = ?", companyID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register employee"))
		return
	}

	// Step 2: create the Admin account
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register employee"))
		return
	}

	employee := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Phone:        req.Phone,
		Province:     company.Province,
		Municipality: company.Municipality,
		Address:      company.Address,
		CompanyID:    &companyID,
	}
	if err := config.Gorm.WithContext(ctx).Create(&employee).Error; err != nil {
		log.Printf("[admin.register_employee] ERROR creating employee err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register employee"))
		return
	}

	logActivity(c, companyID, "registered_employee", "user", employee.ID.String(), map[string]interface{}{
		"email": employee.Email,
	})

	// Step 3: send the invite asynchronously
	go func() {
		if err := services.GetResendService().SendEmployeeInvite(employee.Email, employee.FirstName, company.Name, req.Password); err != nil {
			log.Printf("[admin.register_employee] failed to send invite to %s: %v", employee.Email, err)
		}
	}()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Employee registered successfully", employee.Response()))
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an Admin user from the caller's company
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/employees/{id} [delete]
func DeleteEmployee(c *gin.Context) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Only company accounts can delete employees"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid employee id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.Gorm.WithContext(ctx).
		Where("id = ? AND company_id = ? AND role = ?", id, companyID, models.RoleAdmin).
		Delete(&models.User{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete employee"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Employee not found"))
		return
	}

	logActivity(c, companyID, "deleted_employee", "user", id.String(), nil)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Employee deleted successfully", nil))
}
