package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"goblog/internal/model"
)

func TestUserPatchValidate(t *testing.T) {
	var patch UserPatch
	raw := `{"username":"","email":"not-an-email","image_file":null}`
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	violations := patch.Validate()
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %+v", len(violations), violations)
	}
	fields := map[string]string{}
	for _, v := range violations {
		fields[v.Field] = v.Message
	}
	if _, ok := fields["username"]; !ok {
		t.Fatalf("missing username violation: %+v", violations)
	}
	if msg := fields["email"]; msg != "must be a valid email address" {
		t.Fatalf("email message = %q", msg)
	}
}

func TestUserPatchNullImageFileAllowed(t *testing.T) {
	var patch UserPatch
	if err := json.Unmarshal([]byte(`{"image_file":null}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if violations := patch.Validate(); len(violations) != 0 {
		t.Fatalf("present-null image_file must be accepted: %+v", violations)
	}
}

func TestPostPatchNullTitleRejected(t *testing.T) {
	var patch PostPatch
	if err := json.Unmarshal([]byte(`{"title":null}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	violations := patch.Validate()
	if len(violations) != 1 || violations[0].Field != "title" {
		t.Fatalf("expected title violation, got %+v", violations)
	}
}

func TestPostPatchLongTitleRejected(t *testing.T) {
	var patch PostPatch
	raw := `{"title":"` + strings.Repeat("a", 256) + `"}`
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if violations := patch.Validate(); len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %+v", violations)
	}
}

func TestShaperImagePath(t *testing.T) {
	shaper := NewShaper("/static/profile_pics", "default.jpg")

	resp := shaper.User(model.User{ID: 1, Username: "ab", Email: "ab@example.com"})
	if resp.ImagePath != "/static/profile_pics/default.jpg" {
		t.Fatalf("default image path = %q", resp.ImagePath)
	}
	if resp.ImageFile != nil {
		t.Fatalf("image_file should be null, got %v", *resp.ImageFile)
	}

	file := "me.png"
	resp = shaper.User(model.User{ID: 1, Username: "ab", Email: "ab@example.com", ImageFile: &file})
	if resp.ImagePath != "/static/profile_pics/me.png" {
		t.Fatalf("image path = %q", resp.ImagePath)
	}
}

func TestShaperPostCarriesAuthor(t *testing.T) {
	shaper := NewShaper("/static/profile_pics", "default.jpg")
	post := model.Post{
		ID:      3,
		Title:   "t",
		Content: "c",
		UserID:  7,
		Author:  model.User{ID: 7, Username: "w", Email: "w@example.com"},
	}

	resp := shaper.Post(post)
	if resp.Author.ID != 7 || resp.Author.Username != "w" {
		t.Fatalf("author not shaped: %+v", resp.Author)
	}
	if resp.Author.ImagePath == "" {
		t.Fatal("author image_path missing")
	}
}

func TestFromBindingErrorTypeMismatch(t *testing.T) {
	var req PostCreate
	body := []byte(`{"title":"t","content":"c","user_id":"one"}`)
	err := json.Unmarshal(body, &req)
	if err == nil {
		t.Fatal("expected decode error")
	}

	vErr := FromBindingError(err, body)
	if len(vErr.Violations) != 1 {
		t.Fatalf("violations = %+v", vErr.Violations)
	}
	if vErr.Violations[0].Field != "user_id" {
		t.Fatalf("field = %q", vErr.Violations[0].Field)
	}
	if vErr.Body == nil {
		t.Fatal("offending body not echoed")
	}
}
