// Package paths implements objects that follow a path as simulation time
// passes.
//
// Every path implements [FollowablePath]: it is started, advanced by a time
// step each frame, and eventually completes if it has a finite duration. The
// shapes of motion are
//
//   - [PiecewisePath], displacement given by piecewise functions of time
//   - [PhysicsPath], constant acceleration from an initial velocity
//   - [VelocityPath], integrating a velocity read each step, possibly from
//     the history of another tracked object
//   - [ActionPath], moving by an arbitrary rule each step
//
// Elapsed time is accumulated in exact fractions, so that a path advanced ten
// times by 0.1 seconds has been running for exactly one second.
//
// A [Simulation] advances many paths together and records their positions
// into a [history.Keeper].
package paths
