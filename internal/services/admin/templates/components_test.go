package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLazyLoadRendersPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := LazyLoad("/dashboard/content", "Loading dashboard...").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render LazyLoad: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `hx-get="/dashboard/content"`) {
		t.Fatalf("LazyLoad output missing hx-get URL: %q", got)
	}
	if !strings.Contains(got, `class="loading loading-ring loading-md"`) {
		t.Fatalf("LazyLoad output missing loading ring: %q", got)
	}
	if !strings.Contains(got, `<span class="sr-only">Loading dashboard...</span>`) {
		t.Fatalf("LazyLoad output should include sr-only message: %q", got)
	}
}

func TestLoadingSpinner(t *testing.T) {
	var buf bytes.Buffer
	if err := LoadingSpinner().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render LoadingSpinner: %v", err)
	}
	if !strings.Contains(buf.String(), `class="loading loading-ring loading-md"`) {
		t.Fatalf("LoadingSpinner output missing loading ring: %q", buf.String())
	}
}

func TestTableRendersRowsAndPager(t *testing.T) {
	view := TableView{
		ID:      "lists-table",
		Columns: []string{"Name", "Members"},
		Rows: []TableRow{
			{Primary: "VIP", DetailURL: "/lists/l-1", Cells: []string{"3"}},
			{
				Primary: "Plain",
				Cells:   []string{"0"},
				Actions: []RowAction{{Label: "Delete", URL: "/lists/l-2/delete", Confirm: "Sure?"}},
			},
		},
		NextToken:   "tok-2",
		HTMXBaseURL: "/lists/table",
	}

	var buf bytes.Buffer
	if err := Table(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Table: %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, `<div id="lists-table">`) {
		t.Fatalf("missing container id: %q", got)
	}
	if !strings.Contains(got, `<a href="/lists/l-1">VIP</a>`) {
		t.Fatalf("missing detail link: %q", got)
	}
	if !strings.Contains(got, `hx-post="/lists/l-2/delete"`) {
		t.Fatalf("missing row action: %q", got)
	}
	if !strings.Contains(got, `hx-confirm="Sure?"`) {
		t.Fatalf("missing confirm prompt: %q", got)
	}
	if !strings.Contains(got, `hx-get="/lists/table?page_token=tok-2"`) {
		t.Fatalf("missing pager URL: %q", got)
	}
}

func TestTableRendersEmptyState(t *testing.T) {
	view := TableView{ID: "lists-table", Message: "Nothing here yet."}

	var buf bytes.Buffer
	if err := Table(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Table: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Nothing here yet.") {
		t.Fatalf("missing empty state: %q", got)
	}
	if strings.Contains(got, "<table") {
		t.Fatalf("empty table should not render rows: %q", got)
	}
}

func TestTableEscapesCellContent(t *testing.T) {
	view := TableView{
		ID:      "t",
		Columns: []string{"Name"},
		Rows:    []TableRow{{Primary: `<script>alert(1)</script>`}},
	}

	var buf bytes.Buffer
	if err := Table(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Table: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("cell content not escaped: %q", buf.String())
	}
}

func TestLayoutRendersNavAndTenant(t *testing.T) {
	page := PageContext{
		Lang:        "en",
		Tenant:      "acme",
		CurrentPath: "/lists",
	}

	var buf bytes.Buffer
	if err := Layout(page, "Tidemark | Lists", Notice("hello")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render Layout: %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "<title>Tidemark | Lists</title>") {
		t.Fatalf("missing title: %q", got)
	}
	if !strings.Contains(got, "<strong>acme</strong>") {
		t.Fatalf("missing tenant badge: %q", got)
	}
	if !strings.Contains(got, `<main id="content">`) {
		t.Fatalf("missing main content: %q", got)
	}
	if !strings.Contains(got, "hello") {
		t.Fatalf("missing child content: %q", got)
	}
	if !strings.Contains(got, `<li class="active"><a href="/lists">`) {
		t.Fatalf("missing active nav item: %q", got)
	}
}

func TestDashboardContentEmptyActivity(t *testing.T) {
	page := PageContext{Lang: "en"}
	stats := DashboardStats{Contacts: "10", Lists: "2", ActiveCampaigns: "1"}

	var buf bytes.Buffer
	if err := DashboardContent(page, stats, nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render DashboardContent: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `<div class="stat-value">10</div>`) {
		t.Fatalf("missing stat value: %q", got)
	}
	if !strings.Contains(got, "dashboard.no_activity") {
		t.Fatalf("missing empty activity message: %q", got)
	}
}

func TestBlockPreviewWritesSanitizedMarkupVerbatim(t *testing.T) {
	var buf bytes.Buffer
	if err := BlockPreview("<p><strong>hi</strong></p>").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render BlockPreview: %v", err)
	}
	if !strings.Contains(buf.String(), "<p><strong>hi</strong></p>") {
		t.Fatalf("preview should not escape sanitized markup: %q", buf.String())
	}
}
