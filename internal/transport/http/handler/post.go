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

type PostHandler struct {
	posts  *app.PostService
	shaper *schema.Shaper
}

func NewPostHandler(posts *app.PostService, shaper *schema.Shaper) *PostHandler {
	return &PostHandler{posts: posts, shaper: shaper}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List()
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": h.shaper.Posts(posts)})
}

func (h *PostHandler) Create(c *gin.Context) {
	var req schema.PostCreate
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWith(c, schema.FromBindingError(err, rawBody(c)))
		return
	}

	post, err := h.posts.Create(c.Request.Context(), app.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
		UserID:    req.UserID,
	})
	if err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.JSON(http.StatusCreated, h.shaper.Post(*post))
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(id)
	if err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.JSON(http.StatusOK, h.shaper.Post(*post))
}

func (h *PostHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req schema.PostReplace
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWith(c, schema.FromBindingError(err, rawBody(c)))
		return
	}

	post, err := h.posts.Replace(c.Request.Context(), id, app.ReplacePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
		UserID:    req.UserID,
	})
	if err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.JSON(http.StatusOK, h.shaper.Post(*post))
}

func (h *PostHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req schema.PostPatch
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWith(c, schema.FromBindingError(err, rawBody(c)))
		return
	}
	if violations := req.Validate(); len(violations) > 0 {
		abortValidation(c, violations)
		return
	}

	post, err := h.posts.Patch(c.Request.Context(), id, app.PatchPostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.JSON(http.StatusOK, h.shaper.Post(*post))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func translatePostErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return httperr.BadRequest(err.Error())
	case errors.Is(err, app.ErrPostNotFound):
		return httperr.NotFound("Post not found")
	case errors.Is(err, app.ErrUserNotFound):
		return httperr.NotFound("User not found")
	default:
		return err
	}
}
