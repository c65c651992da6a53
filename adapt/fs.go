package adapt

import (
	"io/fs"
	"path"

	"github.com/treekit/treekit"
)

// FSNode adapts an io/fs filesystem: directories list their entries as
// children, files are leaves. Directories that cannot be read yield no
// children rather than failing the traversal.
type FSNode struct {
	fsys fs.FS
	path string
	dir  bool
}

// NewFS wraps a filesystem root as a tree root.
func NewFS(fsys fs.FS) *FSNode {
	return &FSNode{fsys: fsys, path: ".", dir: true}
}

// NewFSAt wraps the directory or file at the given slash path.
func NewFSAt(fsys fs.FS, name string) (*FSNode, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, err
	}
	return &FSNode{fsys: fsys, path: name, dir: info.IsDir()}, nil
}

// Path returns the node's slash path within the filesystem.
func (n *FSNode) Path() string { return n.path }

// IsDir reports whether the node is a directory.
func (n *FSNode) IsDir() bool { return n.dir }

// Children lists directory entries in ReadDir order.
func (n *FSNode) Children() []treekit.Node {
	if !n.dir {
		return nil
	}
	entries, err := fs.ReadDir(n.fsys, n.path)
	if err != nil {
		return nil
	}
	kids := make([]treekit.Node, len(entries))
	for i, e := range entries {
		kids[i] = &FSNode{
			fsys: n.fsys,
			path: path.Join(n.path, e.Name()),
			dir:  e.IsDir(),
		}
	}
	return kids
}

// Parent returns the containing directory, nil at the filesystem root.
func (n *FSNode) Parent() treekit.ParentNode {
	if n.path == "." {
		return nil
	}
	dir := path.Dir(n.path)
	return &FSNode{fsys: n.fsys, path: dir, dir: true}
}

// Label returns the entry name; the root is labeled ".".
func (n *FSNode) Label() string {
	if n.path == "." {
		return "."
	}
	return path.Base(n.path)
}

func (n *FSNode) String() string { return n.Label() }

// fsID identifies a node by its slash path. fs.FS values are not
// required to be comparable, so the filesystem itself cannot take part
// in identity; nodes from different filesystems at the same path are
// considered equivalent.
type fsID struct {
	path string
}

// NID identifies the node by path.
func (n *FSNode) NID() any { return fsID{n.path} }
