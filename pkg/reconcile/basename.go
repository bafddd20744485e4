package reconcile

import (
	"os"
	"strings"
)

// DotBasename returns the base name of cloud, with a leading underscore
// swapped for a dot (_vimrc -> .vimrc).
func DotBasename(cloud string) string {
	base := lastElem(strings.TrimRight(cloud, "/"+string(os.PathSeparator)))
	if strings.HasPrefix(base, "_") {
		return "." + base[1:]
	}
	return base
}

// InferBasename appends the cloud base name to local when local is an
// existing directory that should receive the cloud entry rather than be
// replaced by it. Nonexistent locals are never completed, which is how a
// pair names its destination explicitly.
func (r *Reconciler) InferBasename(cloud, local string) string {
	cloudBase := DotBasename(cloud)
	if cloudBase == lastElem(local) {
		return local
	}

	localInfo, err := r.fs.Stat(local)
	if err != nil || !localInfo.IsDir() {
		return local
	}
	cloudInfo, err := r.fs.Stat(cloud)
	if err != nil {
		return local
	}

	prefix := local
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	switch {
	case cloudInfo.Mode().IsRegular():
		return prefix + cloudBase
	case cloudInfo.IsDir() && !r.IsSyncDir(local):
		return prefix + cloudBase
	}
	return local
}

// lastElem returns the text after the final separator; a trailing
// separator yields "".
func lastElem(p string) string {
	i := strings.LastIndexAny(p, "/"+string(os.PathSeparator))
	return p[i+1:]
}
