package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("expected plain request to not be HTMX")
	}

	req.Header.Set(ResponseHeaderKey, "true")
	if !IsHTMXRequest(req) {
		t.Fatal("expected HX-Request header to mark request as HTMX")
	}

	if IsHTMXRequest(nil) {
		t.Fatal("nil request should not be HTMX")
	}
}

func TestTitleTag(t *testing.T) {
	t.Parallel()

	if got := TitleTag("  "); got != "" {
		t.Fatalf("blank title = %q, want empty", got)
	}
	if got := TitleTag("Lists & Campaigns"); got != "<title>Lists &amp; Campaigns</title>" {
		t.Fatalf("title tag = %q", got)
	}
}

func TestRenderPageUsesFullForPlainRequests(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("fragment"), textComponent("<main>full</main>"), "")

	if body := rec.Body.String(); body != "<main>full</main>" {
		t.Fatalf("body = %q, want full page", body)
	}
}

func TestRenderPageUsesFragmentForHTMXRequests(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ResponseHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("fragment"), textComponent("<main>full</main>"), "")

	if body := rec.Body.String(); body != "fragment" {
		t.Fatalf("body = %q, want fragment", body)
	}
}

func TestRenderPageExtractsMainWhenFragmentMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ResponseHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, nil, textComponent("<html><main class=\"page\">inner</main></html>"), "")

	if body := rec.Body.String(); body != "inner" {
		t.Fatalf("body = %q, want extracted main content", body)
	}
}

func TestRenderPagePrependsTitleForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ResponseHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("fragment"), nil, "<title>Lists</title>")

	body := rec.Body.String()
	if !strings.HasPrefix(body, "<title>Lists</title>") {
		t.Fatalf("body = %q, want title prefix", body)
	}
}

func TestRenderPageSkipsTitleWhenPresent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ResponseHeaderKey, "true")
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("<title>Own</title>body"), nil, "<title>Other</title>")

	body := rec.Body.String()
	if strings.Count(body, "<title") != 1 {
		t.Fatalf("body = %q, want a single title tag", body)
	}
}

func TestRenderPageFallsBackToFragmentForPlainRequests(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RenderPage(rec, req, textComponent("only-fragment"), nil, "")

	if body := rec.Body.String(); body != "only-fragment" {
		t.Fatalf("body = %q, want fragment fallback", body)
	}
}
