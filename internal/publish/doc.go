// Package publish copies framework-owned static assets into a project's
// public directory. Unlike the scaffolder, a forced publish always
// overwrites what is already there.
package publish
