package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"campus-outpass-backend/controllers"
	leavereqhandler "campus-outpass-backend/lib/leave-req"
	"campus-outpass-backend/lib/outpass"
	xlsexport "campus-outpass-backend/lib/export/xls"
	"campus-outpass-backend/middleware"
	apimodels "campus-outpass-backend/models/api"
	leaveapimodels "campus-outpass-backend/models/api/leave"
)

type leaveRequestApiController struct {
	controllers.BaseAPIController
}

func InitLeaveRequestApiRouters(app *fiber.App) {
	controller := leaveRequestApiController{}
	app.Route("leave-requests", func(router fiber.Router) {
		router.Post("", middleware.StudentRequired(), controller.create)
		router.Get("", controller.list)
		router.Get("export", middleware.ApproverRequired(), controller.export)
		router.Get(":id", controller.getByID)
		router.Get(":id/outpass", controller.outpass)
		router.Put(":id/approve", middleware.ApproverRequired(), controller.approve)
		router.Put(":id/reject", middleware.ApproverRequired(), controller.reject)
		router.Put(":id/forward", middleware.ApproverRequired(), controller.forward)
	})
}

// @Summary Submit a leave/outing request
// @Tags Leave requests
// @Description Submit a leave/outing request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.LeaveRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/space/leave-requests [post]
func (c *leaveRequestApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := leavereqhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return decisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List leave requests
// @Tags Leave requests
// @Description Students get their own history, approvers get the filtered ledger
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"all|pending|approved|rejected|forwarded"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/space/leave-requests [get]
func (c *leaveRequestApiController) list(ctx *fiber.Ctx) error {
	list, err := leavereqhandler.Instance.List(middleware.GetUserID(ctx), ctx.Query("status"))
	if err != nil {
		return decisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a leave request
// @Tags Leave requests
// @Description Get a leave request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveRequestView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/leave-requests/{id} [get]
func (c *leaveRequestApiController) getByID(ctx *fiber.Ctx) error {
	view, err := leavereqhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return decisionError(ctx, err)
	}
	if middleware.GetUserRole(ctx).IsStudent() && view.StudentID != middleware.GetUserID(ctx) {
		return ctx.SendStatus(fiber.StatusForbidden)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Approve a pending request
// @Tags Leave requests
// @Description Approve a pending request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/leave-requests/{id}/approve [put]
func (c *leaveRequestApiController) approve(ctx *fiber.Ctx) error {
	err := leavereqhandler.Instance.Approve(ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return decisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject a pending request
// @Tags Leave requests
// @Description Reject a pending request, a reason is mandatory
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Param	body				body		leaveapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/leave-requests/{id}/reject [put]
func (c *leaveRequestApiController) reject(ctx *fiber.Ctx) error {
	var payload leaveapimodels.RejectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := leavereqhandler.Instance.Reject(ctx.Params("id"), middleware.GetUserID(ctx), payload.Reason)
	if err != nil {
		return decisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Forward a pending request
// @Tags Leave requests
// @Description Forward a pending request to the chief warden or the dean
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Param	body				body		leaveapimodels.ForwardData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/leave-requests/{id}/forward [put]
func (c *leaveRequestApiController) forward(ctx *fiber.Ctx) error {
	var payload leaveapimodels.ForwardData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := leavereqhandler.Instance.Forward(ctx.Params("id"), middleware.GetUserID(ctx), payload.ForwardTo)
	if err != nil {
		return decisionError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download the outpass PDF
// @Tags Leave requests
// @Description Printable outpass, available once a request is approved
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200 {file} application/pdf
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/space/leave-requests/{id}/outpass [get]
func (c *leaveRequestApiController) outpass(ctx *fiber.Ctx) error {
	view, err := leavereqhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return decisionError(ctx, err)
	}
	if middleware.GetUserRole(ctx).IsStudent() && view.StudentID != middleware.GetUserID(ctx) {
		return ctx.SendStatus(fiber.StatusForbidden)
	}
	pdfFile, err := outpass.Instance.Generate(ctx.Context(), view.ID)
	if err != nil {
		return decisionError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="outpass.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Export the ledger as XLSX
// @Tags Leave requests
// @Description Export the filtered request list, approvers only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"all|pending|approved|rejected|forwarded"
// @Success 200 {file} application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/space/leave-requests/export [get]
func (c *leaveRequestApiController) export(ctx *fiber.Ctx) error {
	list, err := leavereqhandler.Instance.List(middleware.GetUserID(ctx), ctx.Query("status"))
	if err != nil {
		return decisionError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportRequestList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="leave-requests.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// decisionError maps ledger guard refusals to HTTP statuses; the caller
// always gets a JSON envelope, never a crash.
func decisionError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, leavereqhandler.ErrRequestNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, leavereqhandler.ErrNotStudent),
		errors.Is(err, leavereqhandler.ErrNotApprover),
		errors.Is(err, leavereqhandler.ErrDeanForward):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, leavereqhandler.ErrNotPending),
		errors.Is(err, outpass.ErrNotApproved):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}
