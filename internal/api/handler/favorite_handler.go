package handler

import (
	"starwars-api/internal/api/response"
	"starwars-api/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler 某一类收藏的添加与取消，路径 /favorite/{kind}/:target_id/:user_id
type FavoriteHandler[L any] struct {
	svc *service.FavoriteService[L]
}

func NewFavoriteHandler[L any](svc *service.FavoriteService[L]) *FavoriteHandler[L] {
	return &FavoriteHandler[L]{svc: svc}
}

func (h *FavoriteHandler[L]) ids(c *gin.Context) (targetID, userID int64, ok bool) {
	if targetID, ok = parseIDParam(c, "target_id"); !ok {
		return
	}
	userID, ok = parseIDParam(c, "user_id")
	return
}

// Add 添加收藏，成功返回 201 且不带数据
// @Summary 添加收藏
// @Tags 收藏
// @Produce json
// @Param target_id path int true "目标实体ID"
// @Param user_id path int true "用户ID"
// @Success 201 {object} response.Response "添加成功"
// @Failure 400 {object} response.ErrorResponse "已收藏"
// @Failure 404 {object} response.ErrorResponse "用户或目标不存在"
// @Router /favorite/planet/{target_id}/{user_id} [post]
// @Router /favorite/character/{target_id}/{user_id} [post]
// @Router /favorite/vehicle/{target_id}/{user_id} [post]
func (h *FavoriteHandler[L]) Add(c *gin.Context) {
	targetID, userID, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.svc.Add(c.Request.Context(), targetID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, h.svc.AddedMessage(), nil)
}

// Remove 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Produce json
// @Param target_id path int true "目标实体ID"
// @Param user_id path int true "用户ID"
// @Success 200 {object} response.Response "取消成功"
// @Failure 404 {object} response.ErrorResponse "用户、目标或收藏不存在"
// @Router /favorite/planet/{target_id}/{user_id} [delete]
// @Router /favorite/character/{target_id}/{user_id} [delete]
// @Router /favorite/vehicle/{target_id}/{user_id} [delete]
func (h *FavoriteHandler[L]) Remove(c *gin.Context) {
	targetID, userID, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), targetID, userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, h.svc.RemovedMessage(), nil)
}
