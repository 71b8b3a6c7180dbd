package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// AdminHandlers handles admin-only management requests
type AdminHandlers struct {
	userSvc   domain.UserService
	auditRepo domain.AuditLogRepository
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(userSvc domain.UserService, auditRepo domain.AuditLogRepository) *AdminHandlers {
	return &AdminHandlers{userSvc: userSvc, auditRepo: auditRepo}
}

// UpdateUserRequest carries the admin-editable user fields
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,min=2"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,min=2"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=USER ADMIN SUPER_ADMIN"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=PENDING ACTIVE SUSPENDED INACTIVE"`
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// Dashboard returns aggregate user counts
func (h *AdminHandlers) Dashboard(c *gin.Context) {
	stats, err := h.userSvc.DashboardStats(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	ok(c, http.StatusOK, "Success", gin.H{"stats": stats})
}

// ListUsers returns a paginated user listing
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	q := domain.UserListQuery{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sortBy", "created_at"),
		Order:  c.DefaultQuery("sortOrder", "desc"),
	}

	users, total, err := h.userSvc.ListUsers(c.Request.Context(), q)
	if err != nil {
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Success", gin.H{
		"users":      NewUserViews(users),
		"pagination": NewPagination(q.Page, q.Limit, total),
	})
}

// GetUser returns a single user by id
func (h *AdminHandlers) GetUser(c *gin.Context) {
	user, err := h.userSvc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c)
		return
	}
	ok(c, http.StatusOK, "Success", gin.H{"user": NewUserView(user)})
}

// UpdateUser applies admin edits to a user record
func (h *AdminHandlers) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := h.userSvc.UpdateUser(c.Request.Context(), c.Param("id"), domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Status:    req.Status,
	})
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			fail(c, http.StatusNotFound, "User not found")
		case domain.ErrEmailTaken:
			fail(c, http.StatusBadRequest, "Email already registered")
		default:
			internalError(c)
		}
		return
	}

	ok(c, http.StatusOK, "User updated successfully", gin.H{"user": NewUserView(user)})
}

// DeleteUser removes a user and their sessions
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	if err := h.userSvc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if err == domain.ErrUserNotFound {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c)
		return
	}
	ok(c, http.StatusOK, "User deleted successfully", nil)
}

// ListAuditLogs returns a paginated, filterable audit trail
func (h *AdminHandlers) ListAuditLogs(c *gin.Context) {
	q := domain.AuditLogQuery{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
		UserID: c.Query("userId"),
		Action: c.Query("action"),
	}

	logs, total, err := h.auditRepo.List(c.Request.Context(), q)
	if err != nil {
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Success", gin.H{
		"logs":       NewAuditLogViews(logs),
		"pagination": NewPagination(q.Page, q.Limit, total),
	})
}
