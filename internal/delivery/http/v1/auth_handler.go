package v1

import (
	"net/http"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(api *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	api.POST("/check-username", handler.CheckUsername)
	api.POST("/check-email", handler.CheckEmail)
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.POST("/logout", handler.Logout)
	api.POST("/verify", handler.Verify)
}

type CheckUsernameRequest struct {
	Username string `json:"username"`
}

// CheckEmailRequest keys on emailId, the name the signup form has always
// sent.
type CheckEmailRequest struct {
	Email string `json:"emailId"`
}

type RegisterRequest struct {
	UserType    string `json:"userType"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Password    string `json:"password"`
	Email       string `json:"emailId"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	UserID int64 `json:"userId"`
}

// CheckUsername godoc
// @Summary      Check username availability
// @Description  Returns whether the username is already taken. Degrades to exists=false on failure so signup forms never block.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      CheckUsernameRequest  true  "Username to check"
// @Success      200      {object}  map[string]bool
// @Router       /check-username [post]
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	var req CheckUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"exists": false})
		return
	}

	exists, err := h.authUC.CheckUsername(c.Request.Context(), req.Username)
	if err != nil {
		logger.Log.Error("check-username failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// CheckEmail godoc
// @Summary      Check email availability
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      CheckEmailRequest  true  "Email to check"
// @Success      200      {object}  map[string]bool
// @Router       /check-email [post]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"exists": false})
		return
	}

	exists, err := h.authUC.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Log.Error("check-email failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      RegisterRequest  true  "Registration details"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      409      {object}  map[string]interface{}
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	input := &domain.RegisterInput{
		UserType:    req.UserType,
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
		EmailID:     req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.authUC.Register(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registration successful"})
}

// Login godoc
// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  map[string]interface{}
// @Failure      401      {object}  map[string]interface{}
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password required"})
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Stateless acknowledgement; the client discards its own session state.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Verify godoc
// @Summary      Verify a user id still exists
// @Description  Always responds 200; valid=false covers missing ids and lookup failures alike.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      VerifyRequest  true  "User id"
// @Success      200      {object}  map[string]bool
// @Router       /verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	valid, err := h.authUC.Verify(c.Request.Context(), req.UserID)
	if err != nil {
		logger.Log.Error("verify failed", "userId", req.UserID, "error", err)
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}
