// Package analysis provides post-run diagnostics for capital paths:
// convergence measurement against the steady state and derived
// per-period flow series (output, investment, depreciation, consumption).
package analysis
