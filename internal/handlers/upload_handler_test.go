package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func uploadRouter(baseDir string) *gin.Engine {
	r := gin.New()
	h := NewUploadHandler(baseDir)
	r.POST("/api/upload/image", h.Upload)
	r.DELETE("/api/upload/image/:filename", h.Delete)
	return r
}

func multipartImage(t *testing.T, field, filename, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("a"), size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	t.Run("stores the image under a generated name", func(t *testing.T) {
		dir := t.TempDir()
		body, contentType := multipartImage(t, "image", "logo.png", "image/png", 1024)
		req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
		req.Header.Set("Content-Type", contentType)

		w := performRequest(uploadRouter(dir), req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
		}

		var out struct {
			ImagePath string `json:"imagePath"`
			Filename  string `json:"filename"`
		}
		decodeBody(t, w, &out)
		if !strings.HasPrefix(out.Filename, "project-") || !strings.HasSuffix(out.Filename, ".png") {
			t.Errorf("filename = %q, want project-<unique>.png", out.Filename)
		}
		if out.ImagePath != "/uploads/projects/"+out.Filename {
			t.Errorf("image path = %q", out.ImagePath)
		}
		if _, err := os.Stat(filepath.Join(dir, "projects", out.Filename)); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	})

	t.Run("two uploads of the same file get distinct names", func(t *testing.T) {
		dir := t.TempDir()
		r := uploadRouter(dir)
		names := map[string]bool{}
		for i := 0; i < 2; i++ {
			body, contentType := multipartImage(t, "image", "logo.png", "image/png", 128)
			req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
			req.Header.Set("Content-Type", contentType)
			w := performRequest(r, req)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var out struct {
				Filename string `json:"filename"`
			}
			decodeBody(t, w, &out)
			if names[out.Filename] {
				t.Fatalf("duplicate generated name %q", out.Filename)
			}
			names[out.Filename] = true
		}
	})

	t.Run("rejects files over 5MB", func(t *testing.T) {
		dir := t.TempDir()
		body, contentType := multipartImage(t, "image", "big.png", "image/png", (5<<20)+1)
		req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
		req.Header.Set("Content-Type", contentType)

		w := performRequest(uploadRouter(dir), req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if msg := errMessage(t, w); msg != "image must be at most 5MB" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		dir := t.TempDir()
		body, contentType := multipartImage(t, "image", "doc.pdf", "application/pdf", 1024)
		req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
		req.Header.Set("Content-Type", contentType)

		w := performRequest(uploadRouter(dir), req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if msg := errMessage(t, w); msg != "only image files are allowed" {
			t.Errorf("error = %q", msg)
		}
	})

	t.Run("rejects missing file", func(t *testing.T) {
		dir := t.TempDir()
		req := httptest.NewRequest(http.MethodPost, "/api/upload/image", nil)
		w := performRequest(uploadRouter(dir), req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestUploadDelete(t *testing.T) {
	t.Run("removes an existing file", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "projects")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		name := "project-abc123.png"
		if err := os.WriteFile(filepath.Join(sub, name), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/upload/image/"+name, nil)
		w := performRequest(uploadRouter(dir), req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
		}
		if _, err := os.Stat(filepath.Join(sub, name)); !os.IsNotExist(err) {
			t.Errorf("file still exists: %v", err)
		}
	})

	t.Run("missing file answers 404", func(t *testing.T) {
		dir := t.TempDir()
		req := httptest.NewRequest(http.MethodDelete, "/api/upload/image/project-missing.png", nil)
		w := performRequest(uploadRouter(dir), req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("rejects names outside the upload convention", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"passwd", "project-..png..", "project-a..b"} {
			req := httptest.NewRequest(http.MethodDelete, "/api/upload/image/"+name, nil)
			w := performRequest(uploadRouter(dir), req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("%q: status = %d, want 400", name, w.Code)
			}
		}
	})
}
