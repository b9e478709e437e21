//go:build !debug

package logging

const buildMode = BuildRelease
