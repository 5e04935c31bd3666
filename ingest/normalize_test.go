package ingest

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		referrer  string
		trimSlash bool
		want      PageInfo
	}{
		{
			name: "path and query",
			url:  "/foo/bar?x=1",
			want: PageInfo{URLPath: "/foo/bar", URLQuery: "x=1"},
		},
		{
			name:     "absolute referrer with www",
			url:      "/landing",
			referrer: "https://www.example.com/page?ref=a",
			want: PageInfo{
				URLPath:        "/landing",
				ReferrerPath:   "/page",
				ReferrerQuery:  "ref=a",
				ReferrerDomain: "example.com",
			},
		},
		{
			name:     "bare path referrer is same-site",
			url:      "/foo",
			referrer: "/local",
			want:     PageInfo{URLPath: "/foo", ReferrerPath: "/local"},
		},
		{
			name: "empty url defaults to root",
			url:  "",
			want: PageInfo{URLPath: "/"},
		},
		{
			name: "query only",
			url:  "?utm_source=mail",
			want: PageInfo{URLPath: "/", URLQuery: "utm_source=mail"},
		},
		{
			name: "percent encoded path",
			url:  "/caf%C3%A9?x=1",
			want: PageInfo{URLPath: "/café", URLQuery: "x=1"},
		},
		{
			name: "invalid percent escape falls back to raw",
			url:  "/bad%zz?x=1",
			want: PageInfo{URLPath: "/bad%zz", URLQuery: "x=1"},
		},
		{
			name:     "referrer without www keeps domain",
			url:      "/",
			referrer: "https://news.ycombinator.com/item?id=1",
			want: PageInfo{
				URLPath:        "/",
				ReferrerPath:   "/item",
				ReferrerQuery:  "id=1",
				ReferrerDomain: "news.ycombinator.com",
			},
		},
		{
			name:      "trailing slash stripped when configured",
			url:       "/docs/intro/",
			trimSlash: true,
			want:      PageInfo{URLPath: "/docs/intro"},
		},
		{
			name:      "root path never stripped",
			url:       "/",
			trimSlash: true,
			want:      PageInfo{URLPath: "/"},
		},
		{
			name:      "trailing slash kept by default",
			url:       "/docs/intro/",
			trimSlash: false,
			want:      PageInfo{URLPath: "/docs/intro/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePage(tt.url, tt.referrer, tt.trimSlash)
			if got != tt.want {
				t.Fatalf("NormalizePage(%q, %q, %v) = %+v, want %+v", tt.url, tt.referrer, tt.trimSlash, got, tt.want)
			}
		})
	}
}

func TestNormalizePageEmptyReferrer(t *testing.T) {
	got := NormalizePage("/foo", "", false)
	if got.ReferrerPath != "" || got.ReferrerQuery != "" || got.ReferrerDomain != "" {
		t.Fatalf("empty referrer should yield empty referrer fields, got %+v", got)
	}
}
