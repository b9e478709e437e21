//go:build debug

package logging

const buildMode = BuildDebug
