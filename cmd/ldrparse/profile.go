package main

import (
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/ldraw"
	"github.com/pkg/profile"
)

var profileModes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// startProfile starts a runtime profile that is written to dir when stopped.
// An empty dir lets the profile package pick a temporary directory.
func startProfile(mode, dir string) (interface{ Stop() }, error) {
	fn, ok := profileModes[mode]
	if !ok {
		modes := slices.Sorted(maps.Keys(profileModes))
		return nil, ldraw.Errorf(ldraw.EINVALID, "unknown profile mode %q (want one of %s)", mode, strings.Join(modes, ", "))
	}

	opts := []func(*profile.Profile){fn, profile.Quiet, profile.NoShutdownHook}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	return profile.Start(opts...), nil
}
