package recon

// Config toggles which reconstruction passes reconstruct_all runs, mirroring
// the teacher parser's flat Config{Commands, MapData, Debug} shape
// generalized to this engine's larger pass surface.
type Config struct {
	// RuntimeMerge enables the runtime-struct merge pass (spec §4.5).
	// Requires a non-nil RuntimeReader; ignored otherwise.
	RuntimeMerge bool

	// CrossEnrichment enables the ammo/weapon/projectile and cell/LAND
	// enrichment passes (spec §4.6).
	CrossEnrichment bool

	// DialogueGraph enables the dialogue tree builder (spec §4.7).
	DialogueGraph bool

	// Debug is not read by ReconstructAll; the Logger receives the same
	// Debugf lines whether it is set or not.
	Debug bool

	// MaxRecordsPerKind, if non-zero, soft-caps how many records any single
	// per-type reconstructor will emit; exceeding it is logged and counted
	// in UnreconstructedTypeCounts rather than failing (SPEC_FULL §4).
	// Leveled lists (LVLI/LVLN/LVLC) are not capped.
	MaxRecordsPerKind int

	_ struct{} // To prevent unkeyed literals
}

// DefaultConfig runs every pass with no record cap.
func DefaultConfig() Config {
	return Config{RuntimeMerge: true, CrossEnrichment: true, DialogueGraph: true}
}
