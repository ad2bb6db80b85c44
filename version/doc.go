// Package version reports the build of the running binary. Version and
// Commit can be stamped with -ldflags; otherwise VCS settings recorded by the
// Go toolchain are used.
//
//	go build -ldflags "-X github.com/kbukum/seqfns/version.Version=0.2.0" ./cmd/seqstat
package version
