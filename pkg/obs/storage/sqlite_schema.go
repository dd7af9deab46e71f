package storage

// Schema describes the observations table this package reads. Stores are
// created by the simulation environment, not by this tool; the constant
// documents the expected layout and lets tests build fixture stores.
const Schema = `
CREATE TABLE IF NOT EXISTS observations (
    episode INTEGER NOT NULL,
    step    INTEGER NOT NULL,
    agent   TEXT    NOT NULL,

    -- JSON-encoded list of tensor dimension sizes, e.g. [2,3,4]
    shape   BLOB    NOT NULL,

    -- zlib-compressed little-endian float64 payload, row-major
    obs     BLOB    NOT NULL,

    PRIMARY KEY (episode, step, agent)
);
`

// InsertRecord inserts one observation record; used by tests to build
// fixture stores.
const InsertRecord = `
INSERT INTO observations (episode, step, agent, shape, obs)
VALUES (?, ?, ?, ?, ?);
`

// Query statements prepared by Open.
const (
	countSamplesQuery = `
SELECT COUNT(*) FROM (SELECT 1 FROM observations GROUP BY episode, step);
`

	resolveSampleQuery = `
SELECT episode, step FROM observations
GROUP BY episode, step ORDER BY episode, step
LIMIT 1 OFFSET ?;
`

	listSamplesQuery = `
SELECT episode, step FROM observations
GROUP BY episode, step ORDER BY episode, step
LIMIT ? OFFSET ?;
`

	sampleAgentsQuery = `
SELECT DISTINCT agent FROM observations
WHERE episode = ? AND step = ?
ORDER BY agent;
`

	fetchRecordQuery = `
SELECT shape, obs FROM observations
WHERE episode = ? AND step = ? AND agent = ?;
`
)
