package types

// FrameID is the type of an in-memory frame index, in [0, pool_size).
// It is stable for the lifetime of the pool.
type FrameID int32

// InvalidFrameID is used internally by callers that need a sentinel
// "no frame" value (the public replacer/pool APIs instead use ok-booleans).
const InvalidFrameID = FrameID(-1)
