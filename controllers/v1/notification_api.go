package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"campus-outpass-backend/controllers"
	notificationhandler "campus-outpass-backend/lib/notification"
	"campus-outpass-backend/middleware"
	apimodels "campus-outpass-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary List own notifications
// @Tags Notifications
// @Description List own notifications, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @router /api/v1/space/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list := notificationhandler.Instance.List(middleware.GetUserID(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Description Mark a notification as read, repeat calls are harmless
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"notification id"
// @Success 200 {object} apimodels.Response
// @router /api/v1/space/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	notificationhandler.Instance.MarkRead(ctx.Params("id"))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
