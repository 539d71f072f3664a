// internal/handlers/entity.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/middleware"
	"github.com/javajoker/storefront-admin/internal/services"
	"github.com/javajoker/storefront-admin/internal/utils"
)

// PageState is what a browser needs to render one entity page.
type PageState[R any, F any] struct {
	Entity  string    `json:"entity"`
	Records []R       `json:"records"`
	Form    F         `json:"form"`
	Editing *R        `json:"editing"`
	Error   string    `json:"error,omitempty"`
	Busy    []crud.Op `json:"busy"`
}

// EntityHandler exposes one page controller of the session's workspace.
type EntityHandler[R any, F any] struct {
	page func(*services.Workspace) *crud.Controller[R, F]
}

func NewEntityHandler[R any, F any](page func(*services.Workspace) *crud.Controller[R, F]) *EntityHandler[R, F] {
	return &EntityHandler[R, F]{page: page}
}

func (h *EntityHandler[R, F]) Register(group *gin.RouterGroup) {
	group.GET("", h.GetPage)
	group.POST("/reload", h.Reload)
	group.PUT("/form", h.SetForm)
	group.POST("", h.Create)
	group.POST("/:id/edit", h.BeginEdit)
	group.PUT("/editing", h.Update)
	group.DELETE("/editing", h.CancelEdit)
	group.DELETE("/:id", h.Delete)
}

// GET /{entity}
func (h *EntityHandler[R, F]) GetPage(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	if err := ctl.Mount(c.Request.Context()); err != nil {
		h.fail(c, ctl, err)
		return
	}
	utils.SuccessResponse(c, h.state(c, ctl))
}

// POST /{entity}/reload
func (h *EntityHandler[R, F]) Reload(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	if err := ctl.Load(c.Request.Context()); err != nil {
		h.fail(c, ctl, err)
		return
	}
	utils.SuccessResponse(c, h.state(c, ctl))
}

// PUT /{entity}/form
func (h *EntityHandler[R, F]) SetForm(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	ctl.SetForm(form)
	utils.SuccessResponse(c, h.state(c, ctl))
}

// POST /{entity}
func (h *EntityHandler[R, F]) Create(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	ctl.SetForm(form)

	if err := ctl.Create(c.Request.Context()); err != nil {
		h.fail(c, ctl, err)
		return
	}
	utils.CreatedResponse(c, h.state(c, ctl))
}

// POST /{entity}/:id/edit
func (h *EntityHandler[R, F]) BeginEdit(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.BeginEdit(id); err != nil {
		h.fail(c, ctl, err)
		return
	}
	utils.SuccessResponse(c, h.state(c, ctl))
}

// PUT /{entity}/editing
func (h *EntityHandler[R, F]) Update(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	ctl.SetForm(form)

	if err := ctl.Update(c.Request.Context()); err != nil {
		h.fail(c, ctl, err)
		return
	}
	utils.SuccessResponse(c, h.state(c, ctl))
}

// DELETE /{entity}/editing
func (h *EntityHandler[R, F]) CancelEdit(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	ctl.CancelEdit()
	utils.SuccessResponse(c, h.state(c, ctl))
}

// DELETE /{entity}/:id?confirm=true
func (h *EntityHandler[R, F]) Delete(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	// The browser asks the operator before calling; confirm carries the answer.
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := ctl.Delete(c.Request.Context(), id, crud.Answer(confirmed)); err != nil {
		h.fail(c, ctl, err)
		return
	}
	utils.SuccessResponse(c, h.state(c, ctl))
}

func (h *EntityHandler[R, F]) controller(c *gin.Context) (*crud.Controller[R, F], bool) {
	ws, ok := middleware.GetWorkspace(c)
	if !ok {
		utils.InternalErrorResponse(c, "")
		return nil, false
	}
	return h.page(ws), true
}

func (h *EntityHandler[R, F]) bindForm(c *gin.Context) (F, bool) {
	var form F
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return form, false
	}
	return form, true
}

func (h *EntityHandler[R, F]) fail(c *gin.Context, ctl *crud.Controller[R, F], err error) {
	utils.OperationErrorResponse(c, err, h.state(c, ctl))
}

func (h *EntityHandler[R, F]) state(c *gin.Context, ctl *crud.Controller[R, F]) PageState[R, F] {
	view := ctl.View()
	busy := view.Busy
	if busy == nil {
		busy = []crud.Op{}
	}

	return PageState[R, F]{
		Entity:  view.Entity,
		Records: view.Records,
		Form:    view.Form,
		Editing: view.Editing,
		Error:   utils.Message(utils.GetLangFromContext(c), view.Err),
		Busy:    busy,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequestResponse(c, "", gin.H{"id": c.Param("id")})
		return 0, false
	}
	return id, true
}
