package logging

// silenceOverride replaces the build-mode level with LevelOff. Override for
// testing; drop it to get debug/release verbosity back.
const silenceOverride = true

// InitGlobalStuff sets the process-wide verbosity. Call it once, first thing
// in main, before anything logs.
func InitGlobalStuff() {
	SetVerbosity(EffectiveLevel())
}

// BuildModeLevel returns the level selected for the compiled build mode.
func BuildModeLevel() Level {
	return levelFor(buildMode)
}

// EffectiveLevel returns the level InitGlobalStuff installs.
func EffectiveLevel() Level {
	if silenceOverride {
		return LevelOff
	}
	return BuildModeLevel()
}

// OverrideActive reports whether the build-mode level is being replaced.
func OverrideActive() bool {
	return silenceOverride
}
