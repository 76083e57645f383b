package svnstore

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/shelf/internal/errors"
)

// WCRoot returns the root of the working copy containing path.
// Returns E_NOT_WORKING_COPY when svn does not recognize path, and
// E_SVN_NOT_INSTALLED when svn is missing.
func (s *Store) WCRoot(ctx context.Context, path string) (string, error) {
	res, err := s.svn(ctx, "", "info", "--show-item", "wc-root", "--", pegSafe(path))
	if err != nil {
		if errors.GetCode(err) == errors.ESvnFailed {
			return "", errors.WrapWithDetails(errors.ENotWorkingCopy,
				"'"+path+"' is not a working copy", err,
				map[string]string{"path": path})
		}
		return "", err
	}

	root := strings.TrimSpace(res.Stdout)
	if root == "" {
		return "", errors.NewWithDetails(errors.ENotWorkingCopy,
			"'"+path+"' is not a working copy",
			map[string]string{"path": path})
	}
	return filepath.Clean(root), nil
}
