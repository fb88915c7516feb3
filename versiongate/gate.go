package versiongate

import (
	"context"
	"fmt"
	"strings"

	"github.com/envmgr/versiongate/actionsutils"
	"github.com/envmgr/versiongate/contextutils"
	"go.uber.org/zap"
)

// Outcome is the result of comparing a normalized tag against the version
// declared in the manifest.
type Outcome int

const (
	TagBehind Outcome = iota
	TagEqual
	TagAhead
)

const (
	tagAheadMessage        = "Tag is ahead of Cargo version. Please update Cargo.toml. And recreate the tag."
	releaseNeededMessage   = "Release needed."
	noReleaseNeededMessage = "No release needed."
)

const (
	releaseNeededOutputName = "release_needed"
	tagOutputName           = "tag"
	cargoVersionOutputName  = "cargo_version"
)

// StripTagPrefix removes at most one leading "v" from a tag, so "v1.2.3"
// becomes "1.2.3" and "vv1.2.3" becomes "v1.2.3".
func StripTagPrefix(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// CompareTag orders the normalized tag against the manifest version by plain
// string comparison. Note this is not semver-aware: "9.0.0" sorts after
// "10.0.0".
func CompareTag(normalizedTag, cargoVersion string) Outcome {
	switch {
	case normalizedTag > cargoVersion:
		return TagAhead
	case normalizedTag == cargoVersion:
		return TagEqual
	default:
		return TagBehind
	}
}

// Result describes a completed gate run. Halt is set when the tag was found
// ahead of the manifest version; the caller owns turning that into a nonzero
// process exit.
type Result struct {
	Tag           string
	CargoVersion  string
	ReleaseNeeded bool
	Halt          bool
}

// Run compares tag against cargoVersion and records the decision in the
// workflow sinks. The two heading lines are always written; output records
// are only written when the tag is not ahead.
func Run(ctx context.Context, sinks *actionsutils.Sinks, tag, cargoVersion string) (*Result, error) {
	normalized := StripTagPrefix(tag)
	contextutils.LoggerFrom(ctx).Infow("comparing tag against manifest version",
		zap.String("tag", normalized),
		zap.String("cargoVersion", cargoVersion))

	if err := sinks.WriteSummary(fmt.Sprintf("## Tag: %s", normalized)); err != nil {
		return nil, err
	}
	if err := sinks.WriteSummary(fmt.Sprintf("## Cargo Version: %s", cargoVersion)); err != nil {
		return nil, err
	}

	result := &Result{
		Tag:          normalized,
		CargoVersion: cargoVersion,
	}

	switch CompareTag(normalized, cargoVersion) {
	case TagAhead:
		contextutils.LoggerFrom(ctx).Warnw("tag is ahead of manifest version",
			zap.String("tag", normalized),
			zap.String("cargoVersion", cargoVersion))
		if err := sinks.WriteSummary(tagAheadMessage); err != nil {
			return nil, err
		}
		result.Halt = true
		return result, nil
	case TagEqual:
		if err := sinks.WriteSummary(noReleaseNeededMessage); err != nil {
			return nil, err
		}
		if err := sinks.WriteOutput(releaseNeededOutputName, "false"); err != nil {
			return nil, err
		}
	default:
		if err := sinks.WriteSummary(releaseNeededMessage); err != nil {
			return nil, err
		}
		if err := sinks.WriteOutput(releaseNeededOutputName, "true"); err != nil {
			return nil, err
		}
		result.ReleaseNeeded = true
	}

	if err := sinks.WriteOutput(tagOutputName, normalized); err != nil {
		return nil, err
	}
	if err := sinks.WriteOutput(cargoVersionOutputName, cargoVersion); err != nil {
		return nil, err
	}
	return result, nil
}
