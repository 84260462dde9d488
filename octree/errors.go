package octree

import "errors"

var (
	// ErrEmptyTree indicates a nil root node was passed where a tree is
	// required.
	ErrEmptyTree = errors.New("octree: root is nil")

	// ErrLeafSizeTooSmall indicates LeafSize was set below 1.
	ErrLeafSizeTooSmall = errors.New("octree: LeafSize must be >= 1")

	// ErrLengthMismatch indicates the positions and masses slices passed
	// to Build or BuildParallel have different lengths.
	ErrLengthMismatch = errors.New("octree: len(positions) != len(masses)")
)
