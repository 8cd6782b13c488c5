package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type ToDoItemController struct {
	api         *echo.Group
	useCase     todo.UseCase
	middlewares []echo.MiddlewareFunc
}

// NewToDoItemController registers its routes on api. The optional middlewares apply
// to the to-do routes only.
func NewToDoItemController(api *echo.Group, useCase todo.UseCase, middlewares ...echo.MiddlewareFunc) *ToDoItemController {
	return &ToDoItemController{api: api, useCase: useCase, middlewares: middlewares}
}

// InitToDoItemRoutes initializes to-do routes
func (controller *ToDoItemController) InitToDoItemRoutes() {
	controller.api.POST("/todo", controller.Create, controller.middlewares...)
	controller.api.GET("/todos", controller.FindAll, controller.middlewares...)
}

// Create godoc
// @Summary Create a to-do item
// @Description Store a new to-do item. Any id in the body is ignored, the server assigns it.
// @Tags todo
// @Accept json
// @Produce json
// @Param item body model.CreateToDoItemDTO true "To-do item"
// @Success 201 {object} entity.ToDoItem "Created item"
// @Failure 400 {object} map[string]string "Missing or malformed fields"
// @Failure 409 {object} map[string]string "Storage constraint violated"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todo [post]
func (controller *ToDoItemController) Create(c echo.Context) error {
	var dto model.CreateToDoItemDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-body")})
	}

	item, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		var conflict *model.ConflictError
		switch {
		case errors.Is(err, model.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.required-fields")})
		case errors.As(err, &conflict):
			return c.JSON(http.StatusConflict, map[string]string{"error": msg.GetMessage("todo.error.conflict", conflict.Detail)})
		default:
			return internalError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, item)
}

// FindAll godoc
// @Summary List to-do items
// @Description Return every stored to-do item ordered by id
// @Tags todo
// @Produce json
// @Success 200 {array} entity.ToDoItem "All items"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *ToDoItemController) FindAll(c echo.Context) error {
	items, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func internalError(c echo.Context, err error) error {
	log.Error(msg.GetMessage("app.error.internal"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("app.error.internal")})
}
