package handler

import (
	"fmt"

	"starwars-api/internal/api/response"
	"starwars-api/internal/model"
	"starwars-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 星球、角色、载具共用的处理器，路由见 router.Setup
type CatalogHandler[T any, PT model.EntityPtr[T]] struct {
	svc *service.CatalogService[T, PT]
}

func NewCatalogHandler[T any, PT model.EntityPtr[T]](svc *service.CatalogService[T, PT]) *CatalogHandler[T, PT] {
	return &CatalogHandler[T, PT]{svc: svc}
}

// List 获取目录实体列表
// @Summary 获取星球/角色/载具列表
// @Tags 目录
// @Produce json
// @Success 200 {object} response.Response "获取成功"
// @Router /planet [get]
// @Router /character [get]
// @Router /vehicle [get]
func (h *CatalogHandler[T, PT]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("GET all %ss", h.svc.Kind()), items)
}

// Get 获取单个目录实体
// @Summary 获取指定星球/角色/载具
// @Tags 目录
// @Produce json
// @Param id path int true "实体ID"
// @Success 200 {object} response.Response "获取成功"
// @Failure 404 {object} response.ErrorResponse "实体不存在"
// @Router /planet/{id} [get]
// @Router /character/{id} [get]
// @Router /vehicle/{id} [get]
func (h *CatalogHandler[T, PT]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, "GET single "+h.svc.Kind(), item)
}

// Create 创建目录实体
// @Summary 创建星球/角色/载具
// @Description 必须给出全部字段，不允许其他字段，名称唯一
// @Tags 目录
// @Accept json
// @Produce json
// @Param request body object true "实体字段"
// @Success 201 {object} response.Response "创建成功"
// @Failure 400 {object} response.ErrorResponse "参数错误或名称已存在"
// @Router /planet [post]
// @Router /character [post]
// @Router /vehicle [post]
func (h *CatalogHandler[T, PT]) Create(c *gin.Context) {
	item, err := h.svc.Create(c.Request.Context(), readBody(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("New %s created", h.svc.Kind()), item)
}

// Update 部分更新目录实体
// @Summary 部分更新星球/角色/载具
// @Tags 目录
// @Accept json
// @Produce json
// @Param id path int true "实体ID"
// @Param request body object true "需要修改的字段"
// @Success 200 {object} response.Response "修改成功"
// @Failure 400 {object} response.ErrorResponse "参数错误或名称已存在"
// @Failure 404 {object} response.ErrorResponse "实体不存在"
// @Router /planet/{id} [put]
// @Router /character/{id} [put]
// @Router /vehicle/{id} [put]
func (h *CatalogHandler[T, PT]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, readBody(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("%s with id %d modified successfully", h.svc.Label(), id), nil)
}

// Delete 删除目录实体，相关收藏一并删除
// @Summary 删除星球/角色/载具
// @Tags 目录
// @Produce json
// @Param id path int true "实体ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "实体不存在"
// @Router /planet/{id} [delete]
// @Router /character/{id} [delete]
// @Router /vehicle/{id} [delete]
func (h *CatalogHandler[T, PT]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, fmt.Sprintf("%s with id %d deleted", h.svc.Label(), id), nil)
}
