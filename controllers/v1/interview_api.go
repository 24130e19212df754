package apiv1

import (
	"recruit-flow-backend/controllers"
	interviewhandler "recruit-flow-backend/lib/interview"
	pipelinehandler "recruit-flow-backend/lib/pipeline"
	"recruit-flow-backend/middleware"
	apimodels "recruit-flow-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("start", controller.start)
			idRoute.Put("complete", controller.complete)
			idRoute.Put("cancel", controller.cancel)
		})
	})
	app.Route("candidate/:id/pipeline", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("schedule", controller.schedule)
		router.Get("interviews", controller.list)
		router.Get("next_stage", controller.nextStage)
		router.Get("is_complete", controller.isComplete)
	})
}

// @Summary Назначение собеседования
// @Tags Собеседование
// @Description Назначение собеседования на очередной этап воронки кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID кандидата"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/pipeline/schedule [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	candidateID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := interviewhandler.Instance.Schedule(spaceID, candidateID)
	if err != nil {
		if errors.Is(err, interviewhandler.ErrStageAlreadyScheduled) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, interviewhandler.ErrPipelineExhausted) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Начало собеседования
// @Tags Собеседование
// @Description Перевод собеседования в активный статус
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID собеседования"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/start [put]
func (c *interviewApiController) start(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = interviewhandler.Instance.Start(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка начала собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Завершение собеседования
// @Tags Собеседование
// @Description Завершение собеседования с продвижением кандидата по воронке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID собеседования"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/complete [put]
func (c *interviewApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = interviewhandler.Instance.Complete(ctx.UserContext(), spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена собеседования
// @Tags Собеседование
// @Description Отмена собеседования, позиция кандидата в воронке не меняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID собеседования"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/cancel [put]
func (c *interviewApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	err = interviewhandler.Instance.Cancel(spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Собеседования кандидата
// @Tags Собеседование
// @Description Список собеседований кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID кандидата"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/pipeline/interviews [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	candidateID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := interviewhandler.Instance.List(spaceID, candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка собеседований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Следующий этап
// @Tags Собеседование
// @Description Следующий непройденный этап воронки кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID кандидата"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.NextStageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/pipeline/next_stage [get]
func (c *interviewApiController) nextStage(ctx *fiber.Ctx) error {
	candidateID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	view, err := interviewhandler.Instance.NextStage(spaceID, candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения следующего этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Завершенность воронки
// @Tags Собеседование
// @Description Признак завершения всех этапов воронки кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"ID кандидата"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/pipeline/is_complete [get]
func (c *interviewApiController) isComplete(ctx *fiber.Ctx) error {
	candidateID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	done, err := pipelinehandler.Instance.IsComplete(spaceID, candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки завершенности воронки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(done))
}
