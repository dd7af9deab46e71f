// Package storage provides read access to SQLite observation history
// stores.
//
// # Store Layout
//
// An observation store is a SQLite file produced by a simulation run. It
// holds a single observations table keyed by (episode, step, agent), with
// the serialized shape and compressed payload of each agent's observation
// tensor; see the Schema constant for the exact layout.
//
// The store is an external, read-only input: this package never writes to
// it and opens it with query_only enforced. A missing file is reported
// before the driver touches the path, since SQLite would otherwise create
// an empty database there.
//
// # Usage
//
//	store, err := storage.Open(&storage.Config{Path: "observations.db"})
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	count, err := store.CountObservations(ctx)
//	key, err := store.ResolveSample(ctx, 1)
//	agents, err := store.Agents(ctx, key)
//	tensor, err := store.LoadTensor(ctx, key, agents[0])
//
// One open store is intended to be reused across the metadata query, agent
// enumeration, and per-agent tensor fetches of a single invocation.
package storage
