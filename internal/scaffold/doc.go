// Package scaffold materializes a BayLang starter project: project.json,
// app/module.json, the CSS block, the index page with its model and the
// module description. It never overwrites an existing path, so running
// "baylang init" again is a no-op for files already present. After the
// starter files it publishes the runtime's bundled assets and vendors the
// Vue runtime into public/assets/core.
package scaffold
