package scaffold

import (
	"embed"
	"fmt"
	"path"

	"github.com/bayrell/baylang-cli/internal/manifest"
)

//go:embed templates/*.bay
var templateFS embed.FS

// FileSpec is one starter file: where it goes and how its content is made.
// Content must be a pure function; it is called only when the file is
// actually created.
type FileSpec struct {
	Name    string // progress label, e.g. "IndexPage"
	Path    string // slash-separated, relative to the project root
	Content func() ([]byte, error)
}

// Paths of the non-entry artifacts, relative to the project root.
const (
	PublicAssetsDir  = "public/assets/core"
	RuntimeAssetPath = PublicAssetsDir + "/vue.runtime.global.prod.js"
)

// Entries returns the fixed, ordered list of starter files.
func Entries() []FileSpec {
	return []FileSpec{
		{Name: "project.json", Path: manifest.ProjectFile, Content: encoded(manifest.DefaultProject)},
		{Name: "module.json", Path: "app/" + manifest.ModuleFile, Content: encoded(manifest.DefaultModule)},
		{Name: "CSS", Path: "app/Components/Blocks/CSS.bay", Content: embedded("CSS.bay")},
		{Name: "IndexPage", Path: "app/Components/Pages/IndexPage/IndexPage.bay", Content: embedded("IndexPage.bay")},
		{Name: "IndexPageModel", Path: "app/Components/Pages/IndexPage/IndexPageModel.bay", Content: embedded("IndexPageModel.bay")},
		{Name: "ModuleDescription", Path: "app/ModuleDescription.bay", Content: embedded("ModuleDescription.bay")},
	}
}

func encoded[T any](build func() *T) func() ([]byte, error) {
	return func() ([]byte, error) {
		return manifest.Encode(build())
	}
}

func embedded(name string) func() ([]byte, error) {
	return func() ([]byte, error) {
		data, err := templateFS.ReadFile(path.Join("templates", name))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}
		return data, nil
	}
}
