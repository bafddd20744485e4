package reconcile

import (
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
)

// Wildcard marks a cloud path as "every entry of this directory".
const Wildcard = "*"

// ExpandCloud returns the cloud candidates for a pair: cloud itself when it
// exists, otherwise, for a path ending in Wildcard, every entry of the
// directory before the wildcard that is not in the ignore set.
func (r *Reconciler) ExpandCloud(cloud string) ([]string, error) {
	if _, err := r.fs.Stat(cloud); err == nil {
		return []string{cloud}, nil
	}

	var clouds []string
	if strings.HasSuffix(cloud, Wildcard) {
		dir := strings.TrimSuffix(cloud, Wildcard)
		if entries, err := r.fs.ReadDir(dir); err == nil {
			prefix := dir
			if !strings.HasSuffix(prefix, "/") {
				prefix += "/"
			}
			for _, entry := range entries {
				if r.ignore.Match(entry.Name()) {
					continue
				}
				clouds = append(clouds, prefix+entry.Name())
			}
		}
	}

	if len(clouds) == 0 {
		return nil, errors.Newf(errors.ErrCloudPathInvalid, "invalid cloud path: %s", cloud).
			WithDetail("cloud", cloud)
	}
	return clouds, nil
}
