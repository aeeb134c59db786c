package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goblog/internal/app"
	"goblog/internal/schema"
)

// PageHandler renders the server-side HTML pages. It shares the services with
// the API handlers and differs only in response shaping.
type PageHandler struct {
	posts  *app.PostService
	users  *app.UserService
	shaper *schema.Shaper
}

func NewPageHandler(posts *app.PostService, users *app.UserService, shaper *schema.Shaper) *PageHandler {
	return &PageHandler{posts: posts, users: users, shaper: shaper}
}

func (h *PageHandler) Home(c *gin.Context) {
	posts, err := h.posts.ListHome(c.Request.Context())
	if err != nil {
		abortWith(c, err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Home",
		"posts": h.shaper.Posts(posts),
	})
}

func (h *PageHandler) PostDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(id)
	if err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"title": truncateTitle(post.Title, 50),
		"post":  h.shaper.Post(*post),
	})
}

func (h *PageHandler) UserPosts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	posts, err := h.users.ListPosts(id)
	if err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		abortWith(c, translateUserErr(err))
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Posts by " + user.Username,
		"posts": h.shaper.Posts(posts),
	})
}

func (h *PageHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, translatePostErr(err))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func truncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max])
}
