// Package params defines the domain entities of the capacity model's input
// side: Disposition, Regions, and the Parameters aggregate, together with
// the field schema that is the single source of truth for every recognized
// parameter name. Parameters is constructed exactly once per run and is
// treated as read-only by every downstream consumer.
package params
