package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/community_service/models/enums"
	"github.com/Xushengqwer/community_service/moderation"
	myErrors "github.com/Xushengqwer/community_service/myErrors"
)

// actorFromContext 组装发起操作的主体。
// - UserID 由 UserContextMiddleware 从网关透传的请求头注入到 gin.Context。
// - 角色由网关通过 X-User-Role 请求头透传（0=普通用户, 1=管理员），
//   缺失或非法时按普通用户处理。
func actorFromContext(c *gin.Context) moderation.Actor {
	actor := moderation.Actor{
		UserID: c.GetString(string(constants.UserIDKey)),
		Role:   enums.RoleUser,
	}
	if roleStr := c.GetHeader("X-User-Role"); roleStr != "" {
		if role, err := strconv.Atoi(roleStr); err == nil && enums.UserRole(role).IsAdmin() {
			actor.Role = enums.RoleAdmin
		}
	}
	return actor
}

// requireUserID 取出当前登录用户的 ID，未登录时返回 401 并终止请求。
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(constants.UserIDKey))
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return "", false
	}
	return userID, true
}

// parseIDParam 解析 URL 路径中的 uint64 型 ID 参数，非法时返回 400 并终止请求。
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 "+name+" 格式")
		return 0, false
	}
	return id, true
}

// respondServiceError 将服务层错误映射为对应的 HTTP 响应。
// 未识别的错误一律按 500 处理。
func respondServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, action+"失败: 目标不存在")
	case errors.Is(err, myErrors.ErrForbidden):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, action+"失败: 没有操作权限")
	case errors.Is(err, myErrors.ErrTopicLocked):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, action+"失败: 话题已锁定，禁止新增回复")
	case errors.Is(err, myErrors.ErrInvalidParentReply):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+"失败: 父回复不存在或不属于该话题")
	case errors.Is(err, myErrors.ErrVoteConflict):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, action+"失败: 操作冲突，请重试")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: "+err.Error())
	}
}
