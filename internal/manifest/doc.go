// Package manifest describes the BayLang project.json and module.json
// documents. It builds the starter manifests written by "baylang init",
// encodes them as pretty JSON without escaped slashes, reads them back and
// validates them against embedded JSON Schemas.
package manifest
