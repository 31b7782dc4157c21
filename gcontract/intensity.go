package gcontract

// Intensity gates contract checks and diagnostics.
//
// A check declared at intensity t is active while the environment's
// current intensity is at least t.
// Zero is the default level, so checks without an explicit intensity
// are active in every debug build until the level is lowered.
// Negative levels switch off all default checks;
// positive levels switch on progressively more expensive ones.
type Intensity int

// DefaultIntensity is the level every environment starts at.
const DefaultIntensity Intensity = 0
