// Package planner builds the generation plan for a specification.
//
// The planner is the boundary between "compute a description of changes" and
// "mutate the filesystem": building a plan performs no mutation and the plan
// is a pure function of the specification, the template library, the output
// root's current state, and the allow-path rules. Destinations are resolved
// through the path sandbox before anything else; an escape or an allow-path
// rejection aborts the whole run rather than being collected per file.
//
// Key responsibilities:
//   - Derive destination paths from template identities (suffix removal)
//   - Enforce output-root containment and the allow-path list
//   - Detect pre-existing destinations as conflicts (informational at plan
//     time; the conflict policy decides their fate at apply time)
//   - In strict mode, resolve every placeholder and detect unused parameters
//     before any write can happen
package planner
