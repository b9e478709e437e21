package logging

import "fmt"

// BuildMode distinguishes debug builds from release builds. It is fixed at
// compile time by the "debug" build tag.
type BuildMode int

const (
	BuildRelease BuildMode = iota
	BuildDebug
)

func (m BuildMode) String() string {
	if m == BuildDebug {
		return "debug"
	}
	return "release"
}

// MarshalText implements encoding.TextMarshaler.
func (m BuildMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BuildMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "debug":
		*m = BuildDebug
	case "release":
		*m = BuildRelease
	default:
		return fmt.Errorf("unknown build mode %q", string(text))
	}
	return nil
}

// CurrentBuildMode returns the mode this binary was compiled in.
func CurrentBuildMode() BuildMode {
	return buildMode
}

// levelFor returns the verbosity a build mode asks for: full diagnostics
// while developing, info in shipped builds.
func levelFor(m BuildMode) Level {
	if m == BuildDebug {
		return LevelDebug
	}
	return LevelInfo
}
