// Package fetch downloads a remote asset over HTTP into a local file. It is
// used to vendor the Vue runtime into public/assets/core. A download is a
// single attempt; what happens on failure is decided by the caller's Policy.
package fetch
