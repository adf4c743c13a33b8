package wfc

import "errors"

var (
	// ErrContradiction indicates a cell has no remaining candidate variants.
	ErrContradiction = errors.New("wfc: contradiction - no valid tiles for cell")
	// ErrInvalidWeights indicates a weight set that cannot be sampled.
	ErrInvalidWeights = errors.New("wfc: invalid weights")
	// ErrIndexOutOfRange indicates a registry or grid index outside bounds.
	ErrIndexOutOfRange = errors.New("wfc: index out of range")
	// ErrEmptyTileSet indicates a tile set without any variants.
	ErrEmptyTileSet = errors.New("wfc: tile set must contain at least one variant")
	// ErrInvalidSize indicates non-positive grid dimensions.
	ErrInvalidSize = errors.New("wfc: invalid grid size")
	// ErrNotInitialized indicates Step was called before Initialize.
	ErrNotInitialized = errors.New("wfc: tile map not initialized")
	// ErrMismatchedEdge indicates two adjacent collapsed cells disagree on their shared edge.
	ErrMismatchedEdge = errors.New("wfc: mismatched sockets on shared edge")
	// ErrUnknownSocket indicates an unparseable socket name.
	ErrUnknownSocket = errors.New("wfc: unknown socket")
	// ErrUnknownSymmetry indicates an unparseable rotation set.
	ErrUnknownSymmetry = errors.New("wfc: unknown symmetry")
)
