// Package config manages user-level settings stored at ~/.baylang/config.yaml.
// It resolves the runtime asset URL, the fetch failure policy and the package
// asset directory used by "baylang init" and "baylang publish".
package config
