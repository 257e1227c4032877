// Package history keeps a bounded, frame-indexed record of named values so
// that simulation code can look back in time: where was this object last
// frame, was this key held down two frames ago, how fast is this value
// changing.
//
// A [Keeper] is owned by a single simulation. Once per tick, before any
// object reads history for that tick, the simulation calls
// [Keeper.AdvanceFrame]. Values are written to the current frame with
// [Keeper.Record] and read back with [Keeper.Get], addressed by how many
// frames ago they were recorded.
//
// On top of the keeper, [VelocityCalculator] derives velocities by finite
// differencing, [Event] answers edge questions about per-frame booleans, and
// [CountEvent] and [TimedEvent] are edge-triggered counters.
package history
