package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/http/middleware"
)

// UserHandlers handles self-service profile requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// UpdateProfileRequest carries the caller-editable profile fields
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,min=2"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,min=2"`
	Phone     *string `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// GetProfile returns the caller's profile
func (h *UserHandlers) GetProfile(c *gin.Context) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.userSvc.GetUser(c.Request.Context(), userID.(string))
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

// UpdateProfile updates the caller's profile fields
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := h.userSvc.UpdateProfile(c.Request.Context(), userID.(string), domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
	})
	if err != nil {
		if err == domain.ErrUserNotFound {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c)
		return
	}

	ok(c, http.StatusOK, "Profile updated successfully", gin.H{"user": NewUserView(user)})
}
