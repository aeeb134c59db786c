package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"goblog/internal/app"
	"goblog/internal/httperr"
	"goblog/internal/schema"
)

type UserHandler struct {
	users  *app.UserService
	shaper *schema.Shaper
}

func NewUserHandler(users *app.UserService, shaper *schema.Shaper) *UserHandler {
	return &UserHandler{users: users, shaper: shaper}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req schema.UserCreate
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWith(c, schema.FromBindingError(err, rawBody(c)))
		return
	}

	user, err := h.users.Create(c.Request.Context(), app.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	c.JSON(http.StatusCreated, h.shaper.User(*user))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	c.JSON(http.StatusOK, h.shaper.User(*user))
}

func (h *UserHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req schema.UserPatch
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWith(c, schema.FromBindingError(err, rawBody(c)))
		return
	}
	if violations := req.Validate(); len(violations) > 0 {
		abortValidation(c, violations)
		return
	}

	user, err := h.users.Patch(c.Request.Context(), id, app.PatchUserInput{
		Username:  req.Username,
		Email:     req.Email,
		ImageFile: req.ImageFile,
	})
	if err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	c.JSON(http.StatusOK, h.shaper.User(*user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListPosts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	posts, err := h.users.ListPosts(id)
	if err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": h.shaper.Posts(posts)})
}

func translateUserErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return httperr.BadRequest(err.Error())
	case errors.Is(err, app.ErrUserNotFound):
		return httperr.NotFound("User not found")
	case errors.Is(err, app.ErrUsernameExists), errors.Is(err, app.ErrEmailExists):
		return httperr.BadRequest(err.Error())
	default:
		return err
	}
}
