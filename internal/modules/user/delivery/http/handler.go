package handler

import (
	"net/http"

	"anoa.com/civicwaste/internal/modules/user/dto"
	userService "anoa.com/civicwaste/internal/modules/user/service"
	"anoa.com/civicwaste/pkg/response"
	"anoa.com/civicwaste/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService userService.UserService
	authService userService.AuthService
}

func NewUserHandler(userService userService.UserService, authService userService.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateUserInput true "User"
// @Success 200 {object} entity.User
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Fetch a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} entity.User
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := response.ParseUserID(c)
	if err != nil {
		response.ResponseError(c, err, "Failed to fetch user")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Log in by email
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginInput true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, res)
}

// Register godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterInput true "User"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Router /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, res)
}
