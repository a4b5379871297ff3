package backend

import (
	"context"
	"net/url"

	gl "famgallery/pkg/gallery"
)

// ListFolders returns one level of the folder tree. An empty parent id means
// the root level.
func (c *Client) ListFolders(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
	var query url.Values
	if parentFolderID != "" {
		query = url.Values{"parent_folder_id": {parentFolderID}}
	}
	var folders []gl.Folder
	if err := c.get(ctx, "/folders", query, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, req gl.CreateFolderRequest) (gl.Folder, error) {
	var folder gl.Folder
	if err := c.post(ctx, "/folders", req, &folder); err != nil {
		return gl.Folder{}, err
	}
	return folder, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	return c.delete(ctx, "/folders/"+id)
}
