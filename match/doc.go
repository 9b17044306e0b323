// Package match defines the matching strictness applied during MCS
// search: the atom compatibility rule, the graded bond compatibility
// rule, and the four named presets the orchestration layer runs.
//
// A Policy is plain data — three booleans — and is immutable for the
// lifetime of one search task. Presets compose the axes:
//
//	PresetMax     {bond:false ring:false atomType:false}  most permissive
//	PresetMin     {bond:true  ring:false atomType:false}  order-sensitive
//	PresetMixture {bond:false ring:false atomType:true}   typed atoms
//	PresetRings   {bond:true  ring:true  atomType:true}   strictest, ring systems
//
// Bond compatibility has three graded modes, selected by the policy:
// any (always true), order-equal, and strict-order-with-ring (orders
// AND ring membership must match; only when RingSensitive is set).
//
// Query wildcards short-circuit both predicates: a wildcard atom or
// bond on the query side matches anything.
package match
