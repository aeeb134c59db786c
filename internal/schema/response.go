package schema

import (
	"time"

	"goblog/internal/model"
)

type UserResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	ImageFile *string `json:"image_file"`
	ImagePath string  `json:"image_path"`
}

type PostResponse struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Published  bool         `json:"published"`
	UserID     uint         `json:"user_id"`
	DatePosted time.Time    `json:"date_posted"`
	Author     UserResponse `json:"author"`
}

// Shaper turns persisted records into response bodies. It only formats what
// the repository already loaded; it never goes back to the store.
type Shaper struct {
	imageURLPrefix string
	defaultImage   string
}

func NewShaper(imageURLPrefix, defaultImage string) *Shaper {
	return &Shaper{imageURLPrefix: imageURLPrefix, defaultImage: defaultImage}
}

func (s *Shaper) User(u model.User) UserResponse {
	file := s.defaultImage
	if u.ImageFile != nil && *u.ImageFile != "" {
		file = *u.ImageFile
	}
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		ImageFile: u.ImageFile,
		ImagePath: s.imageURLPrefix + "/" + file,
	}
}

func (s *Shaper) Post(p model.Post) PostResponse {
	return PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Published:  p.Published,
		UserID:     p.UserID,
		DatePosted: p.DatePosted,
		Author:     s.User(p.Author),
	}
}

func (s *Shaper) Posts(posts []model.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.Post(p))
	}
	return out
}
