// Package obs defines the core types and error taxonomy for observation
// history stores.
//
// # Data Model
//
// An observation store is produced by a multi-agent simulation run. Each
// record captures one agent's observation at one point in simulated time:
//
//   - Episode: one full run of the simulated environment
//   - Step: one discrete time index within an episode
//   - Agent: the identifier of the observing agent
//
// All records sharing one (episode, step) pair form a sample. Samples are
// addressed externally by a 1-based index into the ascending (episode, step)
// enumeration.
//
// The stored payload is a compressed, shape-tagged tensor; see the tensor
// subpackage for decoding and the storage subpackage for retrieval.
package obs
