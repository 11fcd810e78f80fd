package v1

import (
	"net/http"
	"strconv"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(api *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	api.GET("/get-all-users", handler.ListUsers)
	api.GET("/get-user/:id", handler.GetUser)
}

// ListUsers godoc
// @Summary      List all registered users with resume counts
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /get-all-users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if users == nil {
		users = []domain.UserSummary{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// GetUser godoc
// @Summary      Get one user with their resume references
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /get-user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.userUC.GetUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
