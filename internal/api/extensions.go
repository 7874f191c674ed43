package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/extmarket/client-go/internal/types"
)

// ListExtensions retrieves a page of the extension catalog. Query parameters
// are serialized in declaration order; nil fields are omitted entirely while
// set-but-zero values (page=0, search="") are sent.
func ListExtensions(ctx context.Context, c Caller, p *types.ListExtensionsParams) (*types.ExtensionList, error) {
	q := &query{}
	if p != nil {
		if p.Page != nil {
			q.addInt("page", *p.Page)
		}
		if p.Limit != nil {
			q.addInt("limit", *p.Limit)
		}
		if p.Category != nil {
			q.add("category", *p.Category)
		}
		if p.Search != nil {
			q.add("search", *p.Search)
		}
		if len(p.Tags) > 0 {
			q.add("tags", strings.Join(p.Tags, ","))
		}
		if p.Sort != "" {
			q.add("sort", string(p.Sort))
		}
		if p.Publisher != nil {
			q.add("publisher", *p.Publisher)
		}
	}
	var out types.ExtensionList
	if err := getJSON(ctx, c, "list_extensions", "/extensions", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExtension retrieves the full detail record for one extension.
func GetExtension(ctx context.Context, c Caller, slug string) (*types.Extension, error) {
	var out types.Extension
	if err := getJSON(ctx, c, "get_extension", "/extensions/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDownloadURL retrieves a signed download descriptor. An empty version
// omits the parameter and lets the server pick the latest release.
func GetDownloadURL(ctx context.Context, c Caller, slug, version string) (*types.Download, error) {
	q := &query{}
	if version != "" {
		q.add("version", version)
	}
	var out types.Download
	if err := getJSON(ctx, c, "get_download_url", "/extensions/"+url.PathEscape(slug)+"/download", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVersions retrieves the ordered version history for an extension.
func ListVersions(ctx context.Context, c Caller, slug string) ([]types.Version, error) {
	var out types.VersionList
	if err := getJSON(ctx, c, "list_versions", "/extensions/"+url.PathEscape(slug)+"/versions", nil, &out); err != nil {
		return nil, err
	}
	return out.Versions, nil
}
