package handler

import (
	"fmt"

	"starwars-api/internal/api/response"
	"starwars-api/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers 获取用户列表
// @Summary 获取用户列表
// @Description 返回全部用户，包含已停用的用户
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=[]model.User} "获取成功"
// @Router /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, "GET all users", users)
}

// GetUser 获取用户信息
// @Summary 获取指定用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=model.User} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, "GET single user", user)
}

// CreateUser 创建用户
// @Summary 创建用户
// @Description 必填 user_name、email、password，is_active 可选（默认 true），不允许其他字段
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.UserInput true "用户信息"
// @Success 201 {object} response.Response{data=model.User} "创建成功"
// @Failure 400 {object} response.ErrorResponse "参数错误或用户名/邮箱已存在"
// @Router /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	user, err := h.userService.Create(c.Request.Context(), readBody(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, "New user created", user)
}

// UpdateUser 更新用户
// @Summary 部分更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body dto.UserInput true "需要修改的字段"
// @Success 200 {object} response.Response "修改成功"
// @Failure 400 {object} response.ErrorResponse "参数错误或用户名/邮箱已存在"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Update(c.Request.Context(), id, readBody(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("User with id %d modified successfully", id), nil)
}

// DeleteUser 停用用户
// @Summary 停用用户（软删除）
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response "停用成功"
// @Failure 400 {object} response.ErrorResponse "用户已停用"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("User with id %d deactivated", id), nil)
}

// GetFavorites 获取用户全部收藏
// @Summary 获取用户收藏汇总
// @Description 返回收藏的星球、角色、载具以及用户本身
// @Tags 收藏
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserFavoritesData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /user/{id}/favorites [get]
func (h *UserHandler) GetFavorites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	data, err := h.userService.Favorites(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("GET all favorites of user with id %d", id), data)
}
