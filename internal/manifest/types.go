package manifest

// ProjectManifest represents project.json at the project root.
type ProjectManifest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	License     string        `json:"license"`
	Author      string        `json:"author"`
	Languages   []string      `json:"languages"`
	Modules     []ModuleRef   `json:"modules"`
	Assets      []AssetBundle `json:"assets"`
	Exclude     []string      `json:"exclude"`
}

// ModuleRef points the compiler at a module source directory.
type ModuleRef struct {
	Src  string `json:"src"`
	Type string `json:"type"`
}

// AssetBundle declares a build output that bundles the named modules.
type AssetBundle struct {
	Type    string   `json:"type"`
	Dest    string   `json:"dest"`
	Modules []string `json:"modules"`
}

// ModuleManifest represents a module.json inside a module source directory.
type ModuleManifest struct {
	Name   string            `json:"name"`
	Assets []string          `json:"assets"`
	Src    string            `json:"src"`
	Dest   map[string]string `json:"dest"`
	Allow  []string          `json:"allow"`
}

// Source languages understood by the BayLang compiler.
const (
	LangPHP = "php"
	LangES6 = "es6"
)

// ModuleTypeLib is the ModuleRef.Type of a library module.
const ModuleTypeLib = "lib"

// File names of the two manifest kinds.
const (
	ProjectFile = "project.json"
	ModuleFile  = "module.json"
)

// SourceExt is the file extension of BayLang component sources.
const SourceExt = ".bay"

// DefaultModuleName is the name of the application module created by init.
const DefaultModuleName = "App"

// ModuleAssets lists the component sources of the starter App module,
// relative to the module directory.
var ModuleAssets = []string{
	"Components/Blocks/CSS.bay",
	"Components/Pages/IndexPage/IndexPage.bay",
	"Components/Pages/IndexPage/IndexPageModel.bay",
	"ModuleDescription.bay",
}

// DefaultProject returns the starter project.json content.
func DefaultProject() *ProjectManifest {
	return &ProjectManifest{
		Name:        "BayLang project",
		Description: "Description",
		License:     "MIT",
		Author:      "",
		Languages:   []string{LangPHP, LangES6},
		Modules: []ModuleRef{
			{Src: "./app", Type: ModuleTypeLib},
		},
		Assets: []AssetBundle{
			{Type: "js", Dest: "public/assets/app.js", Modules: []string{DefaultModuleName}},
		},
		Exclude: []string{},
	}
}

// DefaultModule returns the starter app/module.json content.
func DefaultModule() *ModuleManifest {
	return &ModuleManifest{
		Name:   DefaultModuleName,
		Assets: append([]string(nil), ModuleAssets...),
		Src:    "./",
		Dest: map[string]string{
			LangPHP: "../resources/php",
			LangES6: "../resources/es6",
		},
		Allow: []string{`\.bay$`},
	}
}
