package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/manifest"
)

// Repository is a read-only view over a template repository root containing
// base/ and modules/<id>/. It never writes and holds no mutable state.
type Repository struct {
	fsys fs.FS
}

// NewRepository creates a repository over fsys.
func NewRepository(fsys fs.FS) *Repository {
	return &Repository{fsys: fsys}
}

// Validate checks that the repository has a base tree.
func (r *Repository) Validate() error {
	info, err := fs.Stat(r.fsys, BaseDir)
	if err != nil || !info.IsDir() {
		return oerrors.NewNotFoundError(
			"template repository has no base/ directory",
			BaseDir,
			"Point --templates at a directory containing base/ and modules/.",
		)
	}
	return nil
}

// ListBaseFiles returns every file in the base tree, sorted by path.
func (r *Repository) ListBaseFiles() ([]TemplateFile, error) {
	files, err := r.walk(BaseDir)
	if err != nil {
		return nil, fmt.Errorf("listing base template: %w", err)
	}
	return files, nil
}

// HasModule reports whether a module directory exists.
func (r *Repository) HasModule(id string) bool {
	if !validModuleID(id) {
		return false
	}
	info, err := fs.Stat(r.fsys, path.Join(ModulesDir, id))
	return err == nil && info.IsDir()
}

// ListModuleFiles returns the files under modules/<id>/src, sorted by path.
// It returns an error matching ErrNotFound when the module directory is
// absent. A module without a src/ directory contributes no files.
func (r *Repository) ListModuleFiles(id string) ([]TemplateFile, error) {
	if !r.HasModule(id) {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("module %q", id))
	}

	srcDir := path.Join(ModulesDir, id, SourceDir)
	if _, err := fs.Stat(r.fsys, srcDir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	files, err := r.walk(srcDir)
	if err != nil {
		return nil, fmt.Errorf("listing module %s: %w", id, err)
	}
	return files, nil
}

// ReadManifestFragment returns the module's dependency fragment, or nil when
// the module has none.
func (r *Repository) ReadManifestFragment(id string) (*manifest.Manifest, error) {
	if !r.HasModule(id) {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("module %q", id))
	}

	p := path.Join(ModulesDir, id, manifest.FragmentFileName)
	data, err := fs.ReadFile(r.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, oerrors.NewManifestError("reading module dependency fragment", p, err)
	}

	fragment, err := manifest.Parse(data)
	if err != nil {
		return nil, oerrors.NewManifestError("parsing module dependency fragment", p, err)
	}
	return fragment, nil
}

// ModuleIDs returns the ids of all module directories, sorted.
func (r *Repository) ModuleIDs() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ModulesDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading modules directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// walk returns every regular file under root, sorted by path.
func (r *Repository) walk(root string) ([]TemplateFile, error) {
	var files []TemplateFile

	err := fs.WalkDir(r.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, root+"/")
		files = append(files, TemplateFile{
			SourcePath: p,
			RelPath:    rel,
			Templated:  IsTemplated(rel),
			fsys:       r.fsys,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// validModuleID rejects ids that would escape the modules directory.
func validModuleID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}
